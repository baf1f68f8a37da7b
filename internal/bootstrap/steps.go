package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/SamuraiBarbi/local-ai-packaged/internal/compose"
	"github.com/SamuraiBarbi/local-ai-packaged/internal/config"
	"github.com/SamuraiBarbi/local-ai-packaged/internal/repo"
	"github.com/SamuraiBarbi/local-ai-packaged/internal/secret"
)

// Prober observes container runtime state. *docker.Client satisfies it; a
// nil prober (daemon unreachable) degrades every classification to first-run.
type Prober interface {
	FirstRunning(ctx context.Context, substr string) (string, error)
	HasFile(ctx context.Context, containerName, path string) (bool, error)
}

// Steps assembles the full preparation sequence for a config.
func Steps(cfg *config.Config, prober Prober) []Step {
	return []Step{
		&RepoSyncStep{Sync: repo.Sync{
			Dir:       cfg.Supabase.Dir,
			URL:       cfg.Supabase.RepoURL,
			Branch:    cfg.Supabase.Branch,
			SparseDir: cfg.Supabase.SparseDir,
		}},
		&EnvCopyStep{Source: cfg.EnvFile, Target: cfg.SupabaseEnvPath()},
		&SecretStep{Provisioner: secret.Provisioner{
			BasePath:    cfg.SettingsBasePath(),
			TargetPath:  cfg.SettingsPath(),
			Placeholder: cfg.SearXNG.Placeholder,
		}},
		&HardeningStep{
			ComposeFile: cfg.ComposeFile,
			Service:     cfg.SearXNG.Service,
			MarkerPath:  cfg.SearXNG.MarkerPath,
			Prober:      prober,
		},
		&HealthcheckStep{ComposeFile: cfg.SupabaseComposePath()},
	}
}

// RepoSyncStep clones or refreshes the Supabase checkout.
type RepoSyncStep struct {
	Sync repo.Sync
}

func (s *RepoSyncStep) Name() string { return "Supabase repository" }

func (s *RepoSyncStep) Run(ctx context.Context) (string, error) {
	created, err := s.Sync.Ensure()
	if err != nil {
		return "", err
	}
	if created {
		return "cloned " + s.Sync.Dir, nil
	}
	return "updated " + s.Sync.Dir, nil
}

// EnvCopyStep copies the root env file into the Supabase checkout.
type EnvCopyStep struct {
	Source string
	Target string
}

func (s *EnvCopyStep) Name() string { return "Environment file" }

func (s *EnvCopyStep) Run(ctx context.Context) (string, error) {
	data, err := os.ReadFile(s.Source)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", s.Source, err)
	}
	if err := os.WriteFile(s.Target, data, 0600); err != nil {
		return "", fmt.Errorf("writing %s: %w", s.Target, err)
	}
	return s.Source + " -> " + s.Target, nil
}

// SecretStep provisions the SearXNG secret key.
type SecretStep struct {
	Provisioner secret.Provisioner
}

func (s *SecretStep) Name() string { return "SearXNG secret" }

func (s *SecretStep) Run(ctx context.Context) (string, error) {
	res, err := s.Provisioner.Provision()
	if errors.Is(err, secret.ErrTemplateMissing) {
		return "", Skipf("base settings file not found at %s", s.Provisioner.BasePath)
	}
	if err != nil {
		return "", Warnf(secret.Remediation(s.Provisioner.TargetPath), "generating secret key: %v", err)
	}
	switch {
	case res.Substituted > 0 && res.Created:
		return fmt.Sprintf("created %s, replaced %d placeholder(s)", s.Provisioner.TargetPath, res.Substituted), nil
	case res.Substituted > 0:
		return fmt.Sprintf("replaced %d placeholder(s)", res.Substituted), nil
	default:
		return "already provisioned", nil
	}
}

// HardeningStep toggles the SearXNG cap_drop directive according to the
// detected first-run state.
type HardeningStep struct {
	ComposeFile string
	Service     string
	MarkerPath  string
	Prober      Prober
}

func (s *HardeningStep) Name() string { return "SearXNG hardening" }

func (s *HardeningStep) Run(ctx context.Context) (string, error) {
	lines, err := compose.ReadLines(s.ComposeFile)
	if err != nil {
		return "", Skipf("compose file not found at %s", s.ComposeFile)
	}

	firstRun := s.classify(ctx)

	if !compose.ToggleHardening(lines, s.Service+":", firstRun) {
		if firstRun {
			return "cap_drop already disabled", nil
		}
		return "cap_drop already active", nil
	}

	content := strings.Join(lines, "\n") + "\n"
	if err := compose.CheckWellFormed(content); err != nil {
		return "", Warnf("", "%v", err)
	}
	if err := compose.WriteLines(s.ComposeFile, lines); err != nil {
		return "", err
	}

	if firstRun {
		fmt.Println("Note: after the first run completes, cap_drop: - ALL is re-enabled automatically on the next start.")
		return "first run: cap_drop temporarily disabled", nil
	}
	return "cap_drop re-enabled", nil
}

// classify decides first-run vs not-first-run. A running service container
// that carries the marker file finished its one-time initialization; every
// probe failure falls back to first-run, since hardening too early blocks
// initialization while the reverse is merely a delayed re-enable.
func (s *HardeningStep) classify(ctx context.Context) bool {
	if s.Prober == nil {
		fmt.Printf("No container runtime available - assuming first run for %s\n", s.Service)
		return true
	}

	name, err := s.Prober.FirstRunning(ctx, s.Service)
	if err != nil {
		fmt.Printf("Error checking for %s container: %v - assuming first run\n", s.Service, err)
		return true
	}
	if name == "" {
		fmt.Printf("No running %s container found - assuming first run\n", s.Service)
		return true
	}

	found, err := s.Prober.HasFile(ctx, name, s.MarkerPath)
	if err != nil {
		fmt.Printf("Error probing %s for %s: %v - assuming first run\n", name, s.MarkerPath, err)
		return true
	}
	if found {
		fmt.Printf("Found %s inside %s - not first run\n", s.MarkerPath, name)
		return false
	}
	fmt.Printf("%s not found inside %s - first run\n", s.MarkerPath, name)
	return true
}

// HealthcheckStep rewrites the obsolete Supabase Realtime healthcheck.
type HealthcheckStep struct {
	ComposeFile string
}

func (s *HealthcheckStep) Name() string { return "Realtime healthcheck" }

func (s *HealthcheckStep) Run(ctx context.Context) (string, error) {
	data, err := os.ReadFile(s.ComposeFile)
	if err != nil {
		return "", Skipf("Supabase compose file not found at %s", s.ComposeFile)
	}

	fixed, changed, err := compose.FixRealtimeHealthcheck(string(data))
	if err != nil {
		return "", Warnf("", "could not locate healthcheck sections: %v", err)
	}
	if !changed {
		return "already using an unauthenticated check", nil
	}

	if err := compose.CheckWellFormed(fixed); err != nil {
		return "", Warnf("", "%v", err)
	}
	if err := os.WriteFile(s.ComposeFile, []byte(fixed), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", s.ComposeFile, err)
	}
	return "replaced authenticated endpoint with root URL check", nil
}
