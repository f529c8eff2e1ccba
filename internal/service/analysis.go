package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Prasannaverse13/FixMyCode/internal/domain"
)

// HandleAnalysisRequest validates the code, invokes the gateway, and
// persists the record. On gateway failure nothing is persisted.
func (s *Service) HandleAnalysisRequest(ctx context.Context, code string) (*domain.AnalysisRecord, error) {
	if strings.TrimSpace(code) == "" {
		return nil, fmt.Errorf("%w: code is required", domain.ErrInvalidInput)
	}
	if err := s.checkPolicy(ctx, code); err != nil {
		return nil, err
	}

	result, err := s.gateway.Analyze(ctx, code)
	if err != nil {
		return nil, err
	}

	record := &domain.AnalysisRecord{
		AnalysisID: newID("ana"),
		Code:       code,
		Language:   result.Language,
		Result:     *result,
		CreatedAt:  time.Now(),
	}
	if err := s.store.CreateAnalysis(ctx, record); err != nil {
		return nil, &domain.StorageError{Op: "create analysis", Err: err}
	}

	return record, nil
}

// DetectLanguage validates the code and invokes the gateway. Nothing is
// persisted for detection calls.
func (s *Service) DetectLanguage(ctx context.Context, code string) (*domain.LanguageDetection, error) {
	if strings.TrimSpace(code) == "" {
		return nil, fmt.Errorf("%w: code is required", domain.ErrInvalidInput)
	}

	return s.gateway.DetectLanguage(ctx, code)
}

// GetAnalysis re-fetches a stored analysis record.
func (s *Service) GetAnalysis(ctx context.Context, analysisID string) (*domain.AnalysisRecord, error) {
	record, err := s.store.GetAnalysis(ctx, analysisID)
	if err != nil {
		return nil, &domain.StorageError{Op: "get analysis", Err: err}
	}
	if record == nil {
		return nil, fmt.Errorf("%w: analysis %s", domain.ErrNotFound, analysisID)
	}
	return record, nil
}
