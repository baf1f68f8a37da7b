package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/SamuraiBarbi/local-ai-packaged/internal/config"
	"github.com/SamuraiBarbi/local-ai-packaged/internal/docker"
	"github.com/SamuraiBarbi/local-ai-packaged/internal/inventory"
	"github.com/SamuraiBarbi/local-ai-packaged/internal/ui"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "List the stack's services and whether they are running",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load config", err.Error(), ""))
		return err
	}

	ctx := context.Background()

	services, missing, err := inventory.Load(ctx, cfg.Project, []string{cfg.ComposeFile, cfg.SupabaseComposePath()})
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to read compose files", err.Error(), ""))
		return err
	}
	for _, path := range missing {
		ui.Warn(fmt.Sprintf("compose file not found: %s", path))
	}
	if len(missing) > 0 {
		fmt.Println(ui.Hint("run 'localai start' to fetch and prepare the stack"))
	}

	if cli, err := docker.New(); err == nil {
		defer cli.Close()
		if names, err := cli.RunningNames(ctx); err == nil {
			inventory.MarkRunning(services, names)
		} else {
			ui.Warn(fmt.Sprintf("could not list running containers: %v", err))
		}
	} else {
		ui.Warn(fmt.Sprintf("docker API unavailable: %v", err))
	}

	if len(services) == 0 {
		fmt.Println("No services found.")
		return nil
	}

	fmt.Println(ui.Bold(fmt.Sprintf("%d services:", len(services))))
	for _, svc := range services {
		state := ui.Dim("stopped")
		if svc.Running {
			state = "running"
		}
		line := fmt.Sprintf("  %-28s %-10s %s", svc.Name, state, ui.Dim(svc.Image))
		if len(svc.Profiles) > 0 {
			line += " " + ui.Hint("["+strings.Join(svc.Profiles, ", ")+"]")
		}
		fmt.Println(line)
	}

	return nil
}
