// Package stack sequences the docker compose invocations that bring the
// combined project up. Both compose files run under one project name so the
// Supabase and local AI services appear as a single stack.
package stack

import (
	"fmt"
	"time"

	"github.com/SamuraiBarbi/local-ai-packaged/internal/execx"
)

// Runner executes an external command. Tests substitute a recorder.
type Runner func(dir, name string, args ...string) error

// Sequencer owns the compose project and its two compose files.
type Sequencer struct {
	Project         string
	ComposeFile     string // local AI compose file at the repo root
	SupabaseCompose string // compose file inside the sparse checkout
	StartupWait     time.Duration
	Run             Runner
	Sleep           func(time.Duration)
}

func (s *Sequencer) runner() Runner {
	if s.Run != nil {
		return s.Run
	}
	return execx.Echo
}

// DownArgs builds the argv for stopping the whole project. A profile of
// "none" or "" suppresses the --profile flag.
func (s *Sequencer) DownArgs(profile string) []string {
	args := []string{"compose", "-p", s.Project}
	if profile != "" && profile != "none" {
		args = append(args, "--profile", profile)
	}
	return append(args, "-f", s.ComposeFile, "down")
}

// UpArgs builds the argv for starting one compose file detached.
func (s *Sequencer) UpArgs(composeFile, profile string) []string {
	args := []string{"compose", "-p", s.Project}
	if profile != "" && profile != "none" {
		args = append(args, "--profile", profile)
	}
	return append(args, "-f", composeFile, "up", "-d")
}

// Down stops and removes every container in the project.
func (s *Sequencer) Down(profile string) error {
	fmt.Printf("Stopping and removing existing containers for project %q...\n", s.Project)
	if err := s.runner()("", "docker", s.DownArgs(profile)...); err != nil {
		return fmt.Errorf("compose down: %w", err)
	}
	return nil
}

// Start runs the fixed sequence: Supabase up, a flat wait for it to
// initialize (a timer, not a readiness probe), then the local AI services.
func (s *Sequencer) Start(profile string) error {
	run := s.runner()

	fmt.Println("Starting Supabase services...")
	if err := run("", "docker", s.UpArgs(s.SupabaseCompose, "")...); err != nil {
		return fmt.Errorf("starting supabase: %w", err)
	}

	fmt.Println("Waiting for Supabase to initialize...")
	sleep := s.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	sleep(s.StartupWait)

	fmt.Println("Starting local AI services...")
	if err := run("", "docker", s.UpArgs(s.ComposeFile, profile)...); err != nil {
		return fmt.Errorf("starting local AI services: %w", err)
	}
	return nil
}
