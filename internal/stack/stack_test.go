package stack

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	dir  string
	name string
	args []string
}

type recorder struct {
	calls []call
	fail  int // index of the call that should fail, -1 for none
}

func (r *recorder) run(dir, name string, args ...string) error {
	idx := len(r.calls)
	r.calls = append(r.calls, call{dir: dir, name: name, args: args})
	if idx == r.fail {
		return errors.New("exit status 1")
	}
	return nil
}

func newSequencer(rec *recorder, slept *[]time.Duration) *Sequencer {
	return &Sequencer{
		Project:         "localai",
		ComposeFile:     "docker-compose.yml",
		SupabaseCompose: "supabase/docker/docker-compose.yml",
		StartupWait:     10 * time.Second,
		Run:             rec.run,
		Sleep:           func(d time.Duration) { *slept = append(*slept, d) },
	}
}

func TestDownArgs(t *testing.T) {
	tests := []struct {
		name     string
		profile  string
		expected []string
	}{
		{
			name:     "cpu profile",
			profile:  "cpu",
			expected: []string{"compose", "-p", "localai", "--profile", "cpu", "-f", "docker-compose.yml", "down"},
		},
		{
			name:     "none suppresses the flag",
			profile:  "none",
			expected: []string{"compose", "-p", "localai", "-f", "docker-compose.yml", "down"},
		},
		{
			name:     "empty suppresses the flag",
			profile:  "",
			expected: []string{"compose", "-p", "localai", "-f", "docker-compose.yml", "down"},
		},
	}

	s := &Sequencer{Project: "localai", ComposeFile: "docker-compose.yml"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, s.DownArgs(tt.profile))
		})
	}
}

func TestUpArgs(t *testing.T) {
	s := &Sequencer{Project: "localai"}

	assert.Equal(t,
		[]string{"compose", "-p", "localai", "--profile", "gpu-nvidia", "-f", "docker-compose.yml", "up", "-d"},
		s.UpArgs("docker-compose.yml", "gpu-nvidia"))
	assert.Equal(t,
		[]string{"compose", "-p", "localai", "-f", "supabase/docker/docker-compose.yml", "up", "-d"},
		s.UpArgs("supabase/docker/docker-compose.yml", ""))
}

func TestStartSequence(t *testing.T) {
	rec := &recorder{fail: -1}
	var slept []time.Duration
	s := newSequencer(rec, &slept)

	require.NoError(t, s.Start("cpu"))

	require.Len(t, rec.calls, 2)
	// Supabase first, without a profile.
	assert.Equal(t, "docker", rec.calls[0].name)
	assert.Contains(t, rec.calls[0].args, "supabase/docker/docker-compose.yml")
	assert.NotContains(t, rec.calls[0].args, "--profile")
	// Then local AI with the profile.
	assert.Contains(t, rec.calls[1].args, "docker-compose.yml")
	assert.Contains(t, rec.calls[1].args, "--profile")
	// The wait sits between the two, as a flat timer.
	assert.Equal(t, []time.Duration{10 * time.Second}, slept)
}

func TestStartAbortsWhenSupabaseFails(t *testing.T) {
	rec := &recorder{fail: 0}
	var slept []time.Duration
	s := newSequencer(rec, &slept)

	err := s.Start("cpu")
	require.Error(t, err)
	assert.Len(t, rec.calls, 1)
	assert.Empty(t, slept)
}

func TestDownPropagatesFailure(t *testing.T) {
	rec := &recorder{fail: 0}
	var slept []time.Duration
	s := newSequencer(rec, &slept)

	assert.Error(t, s.Down("cpu"))
}
