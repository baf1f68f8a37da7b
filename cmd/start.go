package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/SamuraiBarbi/local-ai-packaged/internal/bootstrap"
	"github.com/SamuraiBarbi/local-ai-packaged/internal/config"
	"github.com/SamuraiBarbi/local-ai-packaged/internal/docker"
	"github.com/SamuraiBarbi/local-ai-packaged/internal/stack"
	"github.com/SamuraiBarbi/local-ai-packaged/internal/ui"
	"github.com/spf13/cobra"
)

var (
	startProfile string
	startWait    time.Duration
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Prepare and start the full stack",
	Long: `Run the bootstrap sequence, then stop any previous containers, start
Supabase, wait for it to initialize, and start the local AI services.`,
	RunE: runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)

	startCmd.Flags().StringVar(&startProfile, "profile", "", "compose profile: cpu, gpu-nvidia, gpu-amd, none")
	startCmd.Flags().DurationVar(&startWait, "wait", 0, "how long to wait for Supabase before starting local AI")
}

func runStart(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load config", err.Error(), "run 'localai init' to create a config file"))
		return err
	}
	if startProfile != "" {
		cfg.Profile = startProfile
	}
	if startWait > 0 {
		cfg.StartupWait = startWait
	}
	if !config.ValidProfile(cfg.Profile) {
		err := fmt.Errorf("unknown profile %q", cfg.Profile)
		fmt.Fprint(os.Stderr, ui.FormatError("Invalid profile", err.Error(), "valid profiles: cpu, gpu-nvidia, gpu-amd, none"))
		return err
	}

	ctx := context.Background()

	// The prober is best effort: with no reachable daemon every first-run
	// classification falls back to its safe default.
	var prober bootstrap.Prober
	if cli, err := docker.New(); err == nil {
		defer cli.Close()
		prober = cli
	} else {
		ui.Warn(fmt.Sprintf("docker API unavailable: %v", err))
	}

	fmt.Println(ui.Bold("Preparing the stack..."))
	if _, err := bootstrap.Run(ctx, bootstrap.Steps(cfg, prober)); err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Bootstrap failed", err.Error(), ""))
		return err
	}

	seq := &stack.Sequencer{
		Project:         cfg.Project,
		ComposeFile:     cfg.ComposeFile,
		SupabaseCompose: cfg.SupabaseComposePath(),
		StartupWait:     cfg.StartupWait,
	}

	if err := seq.Down(cfg.Profile); err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Stopping previous containers failed", err.Error(), ""))
		return err
	}
	if err := seq.Start(cfg.Profile); err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Starting the stack failed", err.Error(), ""))
		return err
	}

	ui.Success(fmt.Sprintf("Stack %q is starting (profile: %s)", cfg.Project, cfg.Profile))
	return nil
}
