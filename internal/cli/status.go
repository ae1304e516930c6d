package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bg-music/bgm-tray/internal/logging"
	"github.com/bg-music/bgm-tray/internal/models"
	"github.com/bg-music/bgm-tray/internal/status"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the current track and play state",
	Long: `Read the now-playing log and state file once and print what the tray
would show. Does not need a desktop session.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(settings)

	r := status.NewReader(settings.NowPlayingLog, settings.StateFile, logging.Component(logger, "reader"))
	printStatus(cmd.OutOrStdout(), r.Read())
	return nil
}

func printStatus(w io.Writer, st models.PlaybackStatus) {
	track := styleHint.Render("(none)")
	if st.HasTrack() {
		track = styleValue.Render(st.DisplayName())
	}
	fmt.Fprintf(w, "  %s  %s\n", styleLabel.Render("Track"), track)
	fmt.Fprintf(w, "  %s  %s\n", styleLabel.Render("State"), stateBadge(st.State))
}

func stateBadge(s models.PlayState) string {
	switch s {
	case models.PlayStatePlaying:
		return badgePlaying.Render(s.String())
	case models.PlayStatePaused:
		return badgePaused.Render(s.String())
	default:
		return badgeUnknown.Render(s.String())
	}
}
