// Package service sequences chat turns and analysis requests across the
// store, the policy engine, and the reasoning gateway.
package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/Prasannaverse13/FixMyCode/internal/config"
	"github.com/Prasannaverse13/FixMyCode/internal/domain"
	"github.com/Prasannaverse13/FixMyCode/internal/reasoner"
	"github.com/Prasannaverse13/FixMyCode/internal/store"
	"github.com/Prasannaverse13/FixMyCode/policy"
	"github.com/google/uuid"
)

// Service orchestrates chat sessions and analysis requests. It is the only
// writer to both store collections.
type Service struct {
	store        store.Store
	gateway      reasoner.Gateway
	policyEngine *policy.Engine
	config       *config.Config

	// sessionLocks serializes chat-turn appends per session so concurrent
	// turns for the same session cannot interleave the transcript.
	mu           sync.Mutex
	sessionLocks map[string]*sync.Mutex
}

// New creates a new service.
func New(store store.Store, gateway reasoner.Gateway, policyEngine *policy.Engine, cfg *config.Config) *Service {
	return &Service{
		store:        store,
		gateway:      gateway,
		policyEngine: policyEngine,
		config:       cfg,
		sessionLocks: make(map[string]*sync.Mutex),
	}
}

// sessionLock returns the mutex for a session id, creating it on first use.
// Locks are never evicted; sessions never expire in this design.
func (s *Service) sessionLock(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.sessionLocks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		s.sessionLocks[sessionID] = lock
	}
	return lock
}

// checkPolicy evaluates the submission policy for a code payload. A block
// decision is a caller-side rejection, same as any other precondition
// failure.
func (s *Service) checkPolicy(ctx context.Context, code string) error {
	if s.policyEngine == nil {
		return nil
	}

	decision, err := s.policyEngine.Evaluate(ctx, map[string]interface{}{
		"code_size":     len(code),
		"max_code_size": s.config.MaxCodeBytes,
	})
	if err != nil {
		return fmt.Errorf("policy evaluation failed: %w", err)
	}
	if decision != "allow" {
		return fmt.Errorf("%w: code exceeds the maximum submission size (%d bytes)", domain.ErrInvalidInput, s.config.MaxCodeBytes)
	}
	return nil
}

// newID mints a prefixed unique identifier.
func newID(prefix string) string {
	return prefix + "_" + uuid.New().String()
}
