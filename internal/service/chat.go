package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Prasannaverse13/FixMyCode/internal/domain"
	"github.com/Prasannaverse13/FixMyCode/internal/reasoner"
	"github.com/google/uuid"
)

// CreateSession generates a new unguessable session identifier. No store
// record exists until the first turn is appended.
func (s *Service) CreateSession() string {
	return uuid.New().String()
}

// HandleChatTurn sequences one chat turn end-to-end: load history, call
// the gateway with optional code context, then commit the user turn and
// the assistant turn in that order. On gateway failure nothing is
// persisted and the error propagates unchanged.
func (s *Service) HandleChatTurn(ctx context.Context, sessionID, userText, codeContext string) (string, error) {
	if strings.TrimSpace(sessionID) == "" {
		return "", fmt.Errorf("%w: session id is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(userText) == "" {
		return "", fmt.Errorf("%w: message is required", domain.ErrInvalidInput)
	}
	if codeContext != "" {
		if err := s.checkPolicy(ctx, codeContext); err != nil {
			return "", err
		}
	}

	// Serialize the read-call-append critical section per session.
	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	prior, err := s.store.GetMessages(ctx, sessionID)
	if err != nil {
		return "", &domain.StorageError{Op: "get messages", Err: err}
	}

	turns := make([]reasoner.ChatMessage, 0, len(prior)+2)
	if codeContext != "" {
		turns = append(turns, reasoner.ChatMessage{
			Role:    domain.RoleSystem,
			Content: "The user is currently working with this code:\n\n" + codeContext + "\n\nUse this context when answering their questions.",
		})
	}
	for _, msg := range prior {
		turns = append(turns, reasoner.ChatMessage{Role: msg.Role, Content: msg.Content})
	}
	turns = append(turns, reasoner.ChatMessage{Role: domain.RoleUser, Content: userText})

	reply, err := s.gateway.Converse(ctx, turns)
	if err != nil {
		return "", err
	}

	now := time.Now()
	userMsg := &domain.ChatMessage{
		MessageID: newID("msg"),
		SessionID: sessionID,
		Role:      domain.RoleUser,
		Content:   userText,
		CreatedAt: now,
	}
	if err := s.store.CreateMessage(ctx, userMsg); err != nil {
		return "", &domain.StorageError{Op: "create user message", Err: err}
	}

	assistantMsg := &domain.ChatMessage{
		MessageID: newID("msg"),
		SessionID: sessionID,
		Role:      domain.RoleAssistant,
		Content:   reply,
		CreatedAt: time.Now(),
	}
	if err := s.store.CreateMessage(ctx, assistantMsg); err != nil {
		return "", &domain.StorageError{Op: "create assistant message", Err: err}
	}

	return reply, nil
}

// GetTranscript returns the transcript for a session in chronological
// order. Unknown session ids yield an empty transcript; sessions exist
// implicitly once a turn is stored under them.
func (s *Service) GetTranscript(ctx context.Context, sessionID string) ([]domain.ChatMessage, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, fmt.Errorf("%w: session id is required", domain.ErrInvalidInput)
	}

	messages, err := s.store.GetMessages(ctx, sessionID)
	if err != nil {
		return nil, &domain.StorageError{Op: "get messages", Err: err}
	}
	return messages, nil
}
