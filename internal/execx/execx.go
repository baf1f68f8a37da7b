// Package execx runs external collaborators (git, docker compose) with the
// conventions the bootstrap needs: the command line is echoed before running
// and output streams straight to the terminal.
package execx

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Echo prints the command then runs it with inherited stdio. dir may be
// empty to run in the current directory; it is how repository commands run
// inside the checkout without chdir-ing the whole process.
func Echo(dir, name string, args ...string) error {
	fmt.Println("Running:", name+" "+strings.Join(args, " "))
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Capture runs a command and returns its trimmed stdout.
func Capture(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// LookPath reports whether a binary is available.
func LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
