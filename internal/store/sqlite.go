package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Prasannaverse13/FixMyCode/internal/domain"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// migrate runs database migrations.
func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS chat_messages (
			message_id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			role TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_chat_messages_session ON chat_messages(session_id, created_at)`,
		`CREATE TABLE IF NOT EXISTS code_analyses (
			analysis_id TEXT PRIMARY KEY,
			code TEXT NOT NULL,
			language TEXT,
			result TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\n%s", err, m)
		}
	}

	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateMessage appends a message to a session transcript.
func (s *SQLiteStore) CreateMessage(ctx context.Context, message *domain.ChatMessage) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO chat_messages (message_id, session_id, role, content, created_at) VALUES (?, ?, ?, ?, ?)`,
		message.MessageID, message.SessionID, message.Role, message.Content, message.CreatedAt)
	return err
}

// GetMessages retrieves all messages for a session in chronological order.
// Equal timestamps tie-break on insertion order (rowid), so two sequential
// appends within the same clock tick still come back in call order.
func (s *SQLiteStore) GetMessages(ctx context.Context, sessionID string) ([]domain.ChatMessage, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT message_id, session_id, role, content, created_at FROM chat_messages
		 WHERE session_id = ? ORDER BY created_at ASC, rowid ASC`,
		sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.ChatMessage
	for rows.Next() {
		var msg domain.ChatMessage
		if err := rows.Scan(&msg.MessageID, &msg.SessionID, &msg.Role, &msg.Content, &msg.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

// CreateAnalysis persists an analysis record.
func (s *SQLiteStore) CreateAnalysis(ctx context.Context, record *domain.AnalysisRecord) error {
	result, err := json.Marshal(record.Result)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis result: %w", err)
	}

	var language sql.NullString
	if record.Language != "" {
		language = sql.NullString{String: record.Language, Valid: true}
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO code_analyses (analysis_id, code, language, result, created_at) VALUES (?, ?, ?, ?, ?)`,
		record.AnalysisID, record.Code, language, string(result), record.CreatedAt)
	return err
}

// GetAnalysis retrieves an analysis record by ID. Returns nil when the
// record does not exist.
func (s *SQLiteStore) GetAnalysis(ctx context.Context, analysisID string) (*domain.AnalysisRecord, error) {
	var record domain.AnalysisRecord
	var language sql.NullString
	var result string
	err := s.db.QueryRowContext(ctx,
		`SELECT analysis_id, code, language, result, created_at FROM code_analyses WHERE analysis_id = ?`,
		analysisID).Scan(&record.AnalysisID, &record.Code, &language, &result, &record.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if language.Valid {
		record.Language = language.String
	}
	if err := json.Unmarshal([]byte(result), &record.Result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis result: %w", err)
	}
	return &record, nil
}
