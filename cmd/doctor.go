package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/SamuraiBarbi/local-ai-packaged/internal/config"
	"github.com/SamuraiBarbi/local-ai-packaged/internal/docker"
	"github.com/SamuraiBarbi/local-ai-packaged/internal/execx"
	"github.com/SamuraiBarbi/local-ai-packaged/internal/ui"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that every prerequisite for the stack is in place",
	RunE:  runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

type doctorCheck struct {
	name       string
	suggestion string
	run        func() (string, error)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load config", err.Error(), ""))
		return err
	}

	ctx := context.Background()

	checks := []doctorCheck{
		{
			name:       "git binary",
			suggestion: "install git; the Supabase repo is fetched with a sparse checkout",
			run: func() (string, error) {
				return execx.LookPath("git")
			},
		},
		{
			name:       "docker binary",
			suggestion: "install Docker",
			run: func() (string, error) {
				return execx.LookPath("docker")
			},
		},
		{
			name:       "docker compose",
			suggestion: "install the compose plugin (docker compose version should work)",
			run: func() (string, error) {
				return execx.Capture("docker", "compose", "version", "--short")
			},
		},
		{
			name:       "docker daemon",
			suggestion: "start the Docker daemon",
			run: func() (string, error) {
				cli, err := docker.New()
				if err != nil {
					return "", err
				}
				defer cli.Close()
				if err := cli.Ping(ctx); err != nil {
					return "", err
				}
				return "reachable", nil
			},
		},
		{
			name:       "compose file",
			suggestion: "run from the repository root",
			run: func() (string, error) {
				if _, err := os.Stat(cfg.ComposeFile); err != nil {
					return "", err
				}
				return cfg.ComposeFile, nil
			},
		},
		{
			name:       "env file",
			suggestion: "copy .env.example to .env and fill in your secrets",
			run: func() (string, error) {
				if _, err := os.Stat(cfg.EnvFile); err != nil {
					return "", err
				}
				return cfg.EnvFile, nil
			},
		},
	}

	fmt.Println(ui.Bold("Checking prerequisites..."))

	failed := 0
	for _, check := range checks {
		detail, err := check.run()
		if err != nil {
			ui.CheckErr(check.name, err.Error(), check.suggestion)
			failed++
			continue
		}
		ui.CheckOK(check.name, detail)
	}

	fmt.Println()
	if failed > 0 {
		fmt.Printf("%d of %d checks failed\n", failed, len(checks))
		return fmt.Errorf("%d failed checks", failed)
	}
	ui.Success(fmt.Sprintf("%d checks passed", len(checks)))
	return nil
}
