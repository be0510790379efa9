package file

import (
	"fmt"
	"strings"

	"github.com/bnema/med-cli/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int             `toml:"version" yaml:"version" json:"version"`
	Sessions []sessionSchema `toml:"sessions" yaml:"sessions" json:"sessions"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported catalog schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type sessionSchema struct {
	ID            string `toml:"id" yaml:"id" json:"id"`
	Title         string `toml:"title" yaml:"title" json:"title"`
	Category      string `toml:"category" yaml:"category" json:"category"`
	Tier          string `toml:"tier" yaml:"tier" json:"tier"`
	Duration      int    `toml:"duration_minutes" yaml:"duration_minutes" json:"duration_minutes"`
	IsAvailable   bool   `toml:"is_available" yaml:"is_available" json:"is_available"`
	AudioFilePath string `toml:"audio_file_path,omitempty" yaml:"audio_file_path,omitempty" json:"audio_file_path,omitempty"`
}

func toSchema(sessions []domain.Session) fileSchema {
	file := fileSchema{
		Version:  currentSchemaVersion,
		Sessions: make([]sessionSchema, 0, len(sessions)),
	}
	for _, session := range sessions {
		file.Sessions = append(file.Sessions, sessionSchema{
			ID:            string(session.ID),
			Title:         session.Title,
			Category:      session.Category,
			Tier:          string(session.Tier),
			Duration:      session.Duration,
			IsAvailable:   session.IsAvailable,
			AudioFilePath: session.AudioFilePath,
		})
	}

	return file
}

func fromSchema(file fileSchema) []domain.Session {
	sessions := make([]domain.Session, 0, len(file.Sessions))
	for _, entry := range file.Sessions {
		sessions = append(sessions, domain.Session{
			ID:            domain.SessionID(strings.TrimSpace(entry.ID)),
			Title:         entry.Title,
			Category:      entry.Category,
			Tier:          domain.Tier(strings.ToLower(strings.TrimSpace(entry.Tier))),
			Duration:      entry.Duration,
			IsAvailable:   entry.IsAvailable,
			AudioFilePath: entry.AudioFilePath,
		})
	}

	return sessions
}
