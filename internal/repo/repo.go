// Package repo keeps the Supabase companion checkout in sync. Only the
// docker subdirectory is needed, so a fresh clone uses a cone sparse
// checkout instead of fetching the whole tree.
package repo

import (
	"fmt"
	"os"

	"github.com/SamuraiBarbi/local-ai-packaged/internal/execx"
)

// Runner executes an external command in dir. Tests substitute a recorder.
type Runner func(dir, name string, args ...string) error

// Sync describes the companion repository checkout.
type Sync struct {
	Dir       string // local checkout directory
	URL       string // clone URL
	Branch    string // branch to check out
	SparseDir string // subdirectory included in the sparse checkout
	Run       Runner
}

// Ensure clones the repository with a sparse checkout when Dir is absent,
// and pulls when it already exists. Any git failure aborts.
func (s *Sync) Ensure() (created bool, err error) {
	run := s.Run
	if run == nil {
		run = execx.Echo
	}

	if _, statErr := os.Stat(s.Dir); statErr == nil {
		if err := run(s.Dir, "git", "pull"); err != nil {
			return false, fmt.Errorf("updating %s: %w", s.Dir, err)
		}
		return false, nil
	}

	steps := [][]string{
		{"", "git", "clone", "--filter=blob:none", "--no-checkout", s.URL, s.Dir},
		{s.Dir, "git", "sparse-checkout", "init", "--cone"},
		{s.Dir, "git", "sparse-checkout", "set", s.SparseDir},
		{s.Dir, "git", "checkout", s.Branch},
	}
	for _, step := range steps {
		if err := run(step[0], step[1], step[2:]...); err != nil {
			return false, fmt.Errorf("cloning %s: %w", s.URL, err)
		}
	}
	return true, nil
}
