package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/bnema/med-cli/internal/adapters/render/player"
	"github.com/bnema/med-cli/internal/domain"
	"github.com/bnema/med-cli/internal/simulation"
	"github.com/spf13/cobra"
)

var errSessionUnavailable = errors.New("session is not available")

func newPlayCmd(app *app) *cobra.Command {
	var (
		headless bool
		toggles  int
		tick     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "play <id>",
		Short: "Play a session with a pausable breathing guide",
		Long:  "Play a session. Space or p pauses and resumes the guide, q quits. With --headless the guide is not drawn; the given number of pause/resume toggles is applied and the final state printed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.catalog.GetSession(cmd.Context(), domain.SessionID(args[0]))
			if err != nil {
				return err
			}
			if !session.IsAvailable {
				return fmt.Errorf("%s: %w", session.ID, errSessionUnavailable)
			}

			store := simulation.New()

			if headless {
				defer store.Close()
				if toggles < 0 {
					return fmt.Errorf("--toggles must not be negative, got %d", toggles)
				}
				for i := 0; i < toggles; i++ {
					store.Toggle()
				}
				app.logger.Debug("headless play", "session", session.ID, "toggles", toggles, "running", store.Running())
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s (%s): %s after %d toggles\n", session.Title, session.ID, store.State(), toggles)
				return err
			}

			result, err := player.Run(cmd.Context(), session, store, cmd.InOrStdin(), cmd.OutOrStdout(), player.Options{
				Tick:   tick,
				Logger: app.logger,
			})
			if err != nil {
				return fmt.Errorf("run player: %w", err)
			}

			app.logger.Info("player exited", "session", session.ID, "elapsed", result.Elapsed(), "finished", result.Finished())
			return nil
		},
	}

	cmd.Flags().BoolVar(&headless, "headless", false, "Do not draw the player")
	cmd.Flags().IntVar(&toggles, "toggles", 0, "Pause/resume toggles to apply in headless mode")
	cmd.Flags().DurationVar(&tick, "tick", time.Second, "Session time that passes per frame")

	return cmd
}
