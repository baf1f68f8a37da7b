package cmd

import (
	"fmt"
	"os"

	"github.com/SamuraiBarbi/local-ai-packaged/internal/config"
	"github.com/SamuraiBarbi/local-ai-packaged/internal/stack"
	"github.com/SamuraiBarbi/local-ai-packaged/internal/ui"
	"github.com/spf13/cobra"
)

var stopProfile string

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop and remove every container in the stack",
	RunE:  runStop,
}

func init() {
	rootCmd.AddCommand(stopCmd)

	stopCmd.Flags().StringVar(&stopProfile, "profile", "", "compose profile: cpu, gpu-nvidia, gpu-amd, none")
}

func runStop(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load config", err.Error(), ""))
		return err
	}
	if stopProfile != "" {
		cfg.Profile = stopProfile
	}
	if !config.ValidProfile(cfg.Profile) {
		err := fmt.Errorf("unknown profile %q", cfg.Profile)
		fmt.Fprint(os.Stderr, ui.FormatError("Invalid profile", err.Error(), "valid profiles: cpu, gpu-nvidia, gpu-amd, none"))
		return err
	}

	seq := &stack.Sequencer{
		Project:     cfg.Project,
		ComposeFile: cfg.ComposeFile,
	}
	if err := seq.Down(cfg.Profile); err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Stopping the stack failed", err.Error(), ""))
		return err
	}

	ui.Success(fmt.Sprintf("Stack %q stopped", cfg.Project))
	return nil
}
