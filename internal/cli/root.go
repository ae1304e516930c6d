// Package cli implements the bgm-tray commands.
package cli

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bg-music/bgm-tray/internal/config"
	"github.com/bg-music/bgm-tray/internal/controller"
	"github.com/bg-music/bgm-tray/internal/logging"
	"github.com/bg-music/bgm-tray/internal/models"
	"github.com/bg-music/bgm-tray/internal/status"
	"github.com/bg-music/bgm-tray/internal/tray"
	"github.com/bg-music/bgm-tray/internal/watcher"
)

// Flag values.
var (
	cfgFile       string
	verbose       bool
	scriptPath    string
	nowPlayingLog string
	stateFile     string
	iconPath      string
	iconPausePath string
	pollInterval  time.Duration
	noWatch       bool
)

var rootCmd = &cobra.Command{
	Use:   "bgm-tray",
	Short: "Tray icon and controls for the background music script",
	Long: `bgm-tray shows a system tray icon for a background music controller script.

The menu sends pause, resume and next to the script. The icon and tooltip
follow the script's now-playing log and state file.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runTray,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "", "Configuration file (default ~/.bg-music-tray/config.yaml)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Verbose output (shows debug messages)")
	pf.StringVar(&scriptPath, "script", "", "Path to the controller script (my-bg-music.sh)")
	pf.StringVar(&nowPlayingLog, "now-playing-log", "", "Now-playing log (default ~/.bg-music-nowplaying.log)")
	pf.StringVar(&stateFile, "state-file", "", "Playback state file (default <tmp>/my-bg-music.state)")

	f := rootCmd.Flags()
	f.StringVar(&iconPath, "icon", "", "Tray icon image shown while playing")
	f.StringVar(&iconPausePath, "icon-pause", "", "Tray icon image shown while paused")
	f.DurationVar(&pollInterval, "interval", models.DefaultPollInterval, "How often to re-read the state files")
	f.BoolVar(&noWatch, "no-watch", false, "Disable file-change notifications (poll only)")

	// Add subcommands (alphabetical)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadSettings reads the config file and applies command-line overrides.
func loadSettings(cmd *cobra.Command) (*models.Settings, error) {
	settings, err := config.LoadSettings(cfgFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("script") {
		settings.Script = scriptPath
	}
	if flags.Changed("now-playing-log") {
		settings.NowPlayingLog = nowPlayingLog
	}
	if flags.Changed("state-file") {
		settings.StateFile = stateFile
	}
	if flags.Changed("icon") {
		settings.Icon = iconPath
	}
	if flags.Changed("icon-pause") {
		settings.IconPause = iconPausePath
	}
	if flags.Changed("interval") {
		settings.PollInterval = pollInterval
	}
	if flags.Changed("no-watch") {
		settings.Watch = !noWatch
	}
	if verbose {
		settings.LogLevel = "debug"
	}
	return settings, nil
}

func newLogger(settings *models.Settings) zerolog.Logger {
	logging.SetLevel(settings.LogLevel)
	return logging.New(nil)
}

func runTray(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if err := config.Validate(settings); err != nil {
		return err
	}
	logger := newLogger(settings)

	sys, err := tray.NewSystray()
	if err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "System tray not available: %v\n", err)
		cmd.SilenceErrors = true
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := tray.Options{
		Reader:     status.NewReader(settings.NowPlayingLog, settings.StateFile, logging.Component(logger, "reader")),
		Dispatcher: controller.NewDispatcher(settings.Script, logging.Component(logger, "controller")),
		Icons:      tray.LoadIcons(settings.Icon, settings.IconPause, logging.Component(logger, "icons")),
		Interval:   settings.PollInterval,
		Logger:     logging.Component(logger, "tray"),
	}

	if settings.Watch {
		w, err := watcher.New(logging.Component(logger, "watcher"), settings.NowPlayingLog, settings.StateFile)
		if err != nil {
			logger.Warn().Err(err).Msg("file-change notifications unavailable, polling only")
		} else {
			if err := w.Start(); err != nil {
				logger.Warn().Err(err).Msg("failed to start watcher, polling only")
			}
			defer w.Stop()
			opts.Changes = w.Events()
		}
	}

	logger.Info().
		Str("script", settings.Script).
		Str("now_playing_log", settings.NowPlayingLog).
		Str("state_file", settings.StateFile).
		Dur("interval", settings.PollInterval).
		Bool("watch", settings.Watch).
		Msg("starting tray")

	// Blocks the main goroutine until the tray quits.
	tray.New(sys, opts).Run(ctx)
	return nil
}
