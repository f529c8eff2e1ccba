package reasoner

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// EnvMode is the environment variable name for mode selection.
	EnvMode = "FIXMYCODE_MODE"
	// ModeMock indicates the mock gateway should be used.
	ModeMock = "MOCK"
)

// NewGateway creates a gateway based on the FIXMYCODE_MODE environment
// variable. If FIXMYCODE_MODE=MOCK, returns a MockGateway; otherwise
// returns an HTTPGateway against the configured endpoint.
func NewGateway(baseURL, apiKey, model string, timeout time.Duration) Gateway {
	if os.Getenv(EnvMode) == ModeMock {
		logrus.Info("FIXMYCODE_MODE=MOCK detected, using mock reasoning gateway")
		return NewMockGateway()
	}

	return NewHTTPGateway(NewClient(baseURL, apiKey, timeout), model)
}
