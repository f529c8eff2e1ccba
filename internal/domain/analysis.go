package domain

// CodeAnalysis is the structured result returned by the reasoning service
// for a code analysis request. The shape is fixed: it is both the JSON the
// upstream model is instructed to produce and the payload stored per record.
type CodeAnalysis struct {
	Language      string         `json:"language"`
	Confidence    float64        `json:"confidence"` // 0-100
	Overview      string         `json:"overview"`
	Issues        []Issue        `json:"issues"`
	Optimizations []Optimization `json:"optimizations"`
	Metrics       Metrics        `json:"metrics"`
}

// Issue represents a single finding in the analyzed code.
type Issue struct {
	Type        string `json:"type"`     // performance, security, bug, style
	Severity    string `json:"severity"` // low, medium, high
	Title       string `json:"title"`
	Description string `json:"description"`
	Suggestion  string `json:"suggestion"`
	Line        *int   `json:"line,omitempty"`
}

// Optimization represents a suggested improvement.
type Optimization struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
}

// Metrics holds the quality metrics for the analyzed code.
type Metrics struct {
	QualityScore    float64 `json:"qualityScore"` // 0-100
	Complexity      string  `json:"complexity"`   // low, medium, high
	Maintainability float64 `json:"maintainability"`
}

// LanguageDetection is the result of a standalone language detection call.
type LanguageDetection struct {
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
}
