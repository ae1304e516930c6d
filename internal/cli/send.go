package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bg-music/bgm-tray/internal/config"
	"github.com/bg-music/bgm-tray/internal/controller"
	"github.com/bg-music/bgm-tray/internal/logging"
)

var sendCmd = &cobra.Command{
	Use:       "send <pause|resume|next>",
	Short:     "Send one command to the controller script",
	Long:      `Start the controller script with a single verb, as the tray menu does, and return without waiting for it.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"pause", "resume", "next"},
	RunE:      runSend,
}

func runSend(cmd *cobra.Command, args []string) error {
	verb, err := controller.ParseVerb(args[0])
	if err != nil {
		return err
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if err := config.Validate(settings); err != nil {
		return err
	}
	logger := newLogger(settings)

	d := controller.NewDispatcher(settings.Script, logging.Component(logger, "controller"))
	if err := d.Dispatch(verb); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", styleError.Render("✗"), err)
		cmd.SilenceErrors = true
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Sent %s\n", styleSuccess.Render("✓"), verb)
	return nil
}
