package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	catalogrender "github.com/bnema/med-cli/internal/adapters/render/catalog"
	"github.com/bnema/med-cli/internal/application"
	"github.com/bnema/med-cli/internal/domain"
	"github.com/spf13/cobra"
)

type sessionOutput struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Category      string `json:"category"`
	Tier          string `json:"tier"`
	Duration      int    `json:"duration_minutes"`
	IsAvailable   bool   `json:"is_available"`
	AudioFilePath string `json:"audio_file_path,omitempty"`
}

func toSessionOutput(session domain.Session) sessionOutput {
	return sessionOutput{
		ID:            string(session.ID),
		Title:         session.Title,
		Category:      session.Category,
		Tier:          string(session.Tier),
		Duration:      session.Duration,
		IsAvailable:   session.IsAvailable,
		AudioFilePath: session.AudioFilePath,
	}
}

type sessionFilterFlags struct {
	tier        string
	upToTier    string
	category    string
	available   bool
	maxDuration int
}

func (f sessionFilterFlags) predicates() ([]application.Predicate, error) {
	preds := make([]application.Predicate, 0, 5)

	if f.tier != "" {
		tier, err := domain.ParseTier(f.tier)
		if err != nil {
			return nil, err
		}
		preds = append(preds, application.ByTier(tier))
	}
	if f.upToTier != "" {
		tier, err := domain.ParseTier(f.upToTier)
		if err != nil {
			return nil, err
		}
		preds = append(preds, application.UpToTier(tier))
	}
	if f.category != "" {
		preds = append(preds, application.ByCategory(f.category))
	}
	if f.available {
		preds = append(preds, application.AvailableOnly())
	}
	if f.maxDuration > 0 {
		preds = append(preds, application.MaxDuration(f.maxDuration))
	}

	return preds, nil
}

func newSessionsCmd(app *app) *cobra.Command {
	var (
		filters sessionFilterFlags
		asJSON  bool
		summary bool
	)

	cmd := &cobra.Command{
		Use:     "sessions",
		Aliases: []string{"ls"},
		Short:   "List meditation sessions",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			preds, err := filters.predicates()
			if err != nil {
				return err
			}

			sessions, err := app.catalog.FilterSessions(cmd.Context(), preds...)
			if err != nil {
				return err
			}

			if asJSON {
				return writeSessionsJSON(cmd.OutOrStdout(), sessions)
			}

			opts := catalogrender.RenderOptions{}
			if summary {
				s, err := app.catalog.Summarize(cmd.Context(), preds...)
				if err != nil {
					return err
				}
				opts.Summary = &s
			}

			rendered, err := catalogrender.Render(sessions, opts)
			if err != nil {
				return fmt.Errorf("render sessions: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&filters.tier, "tier", "", "Only sessions of this tier (free, standard, premium)")
	cmd.Flags().StringVar(&filters.upToTier, "up-to-tier", "", "Only sessions at or below this tier")
	cmd.Flags().StringVar(&filters.category, "category", "", "Only sessions in this category")
	cmd.Flags().BoolVar(&filters.available, "available", false, "Only sessions that can be played")
	cmd.Flags().IntVar(&filters.maxDuration, "max-duration", 0, "Only sessions up to this many minutes")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print sessions as JSON")
	cmd.Flags().BoolVar(&summary, "summary", false, "Append per-tier totals")

	cmd.AddCommand(newSessionsShowCmd(app))

	return cmd
}

func newSessionsShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.catalog.GetSession(cmd.Context(), domain.SessionID(args[0]))
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(toSessionOutput(session))
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), catalogrender.RenderSession(session))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the session as JSON")

	return cmd
}

func writeSessionsJSON(w io.Writer, sessions []domain.Session) error {
	out := make([]sessionOutput, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, toSessionOutput(session))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
