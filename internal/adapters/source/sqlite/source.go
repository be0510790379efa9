// Package sqlite serves the session catalog from a SQLite database file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/med-cli/internal/domain"
	"github.com/bnema/med-cli/internal/ports"
	_ "modernc.org/sqlite"
)

const dbDirMode = 0o755

type Source struct {
	db   *sql.DB
	path string
}

var _ ports.SessionSource = (*Source)(nil)

// Open opens (creating if needed) the catalog database at path.
func Open(ctx context.Context, path string) (*Source, error) {
	if path == "" {
		return nil, errors.New("catalog database path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), dbDirMode); err != nil {
		return nil, fmt.Errorf("create catalog database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open catalog database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := initSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init catalog schema: %w", err)
	}

	return &Source{db: db, path: path}, nil
}

func (s *Source) Close() error {
	return s.db.Close()
}

func (s *Source) Path() string {
	return s.path
}

func (s *Source) Load(ctx context.Context) ([]domain.Session, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, title, category, tier, duration_minutes, is_available, audio_file_path
FROM sessions
ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	sessions := make([]domain.Session, 0)
	for rows.Next() {
		var (
			session domain.Session
			id      string
			tier    string
		)
		if err := rows.Scan(&id, &session.Title, &session.Category, &tier, &session.Duration, &session.IsAvailable, &session.AudioFilePath); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		session.ID = domain.SessionID(id)
		session.Tier = domain.Tier(tier)
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}

	return sessions, nil
}

// Replace swaps the stored catalog for sessions, keeping their order.
func (s *Source) Replace(ctx context.Context, sessions []domain.Session) error {
	if err := domain.ValidateCatalog(sessions); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM sessions`); err != nil {
		return fmt.Errorf("clear sessions: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO sessions (position, id, title, category, tier, duration_minutes, is_available, audio_file_path)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare session insert: %w", err)
	}
	defer stmt.Close()

	for i, session := range sessions {
		if _, err := stmt.ExecContext(ctx,
			i,
			string(session.ID),
			session.Title,
			session.Category,
			string(session.Tier),
			session.Duration,
			session.IsAvailable,
			session.AudioFilePath,
		); err != nil {
			return fmt.Errorf("insert session %s: %w", session.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit sessions: %w", err)
	}

	return nil
}
