// Package bootstrap sequences the preparation steps that must happen before
// the stack is started: repository sync, env propagation, secret
// provisioning and the two compose-file patches.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/SamuraiBarbi/local-ai-packaged/internal/ui"
)

// Step is one unit of preparation work. Run returns a short detail string
// for the status line.
type Step interface {
	Name() string
	Run(ctx context.Context) (detail string, err error)
}

// Result records the outcome of one step.
type Result struct {
	Name    string
	Detail  string
	Skipped bool
	Err     error
}

type skipError struct {
	reason string
}

func (e *skipError) Error() string { return e.reason }

// Skipf marks a step as skipped because a prerequisite is missing. The run
// continues with the next step.
func Skipf(format string, a ...any) error {
	return &skipError{reason: fmt.Sprintf(format, a...)}
}

type warnError struct {
	msg  string
	hint string
}

func (e *warnError) Error() string { return e.msg }

// Warnf marks a step as failed without aborting the run, with an optional
// remediation hint printed below the warning.
func Warnf(hint, format string, a ...any) error {
	return &warnError{msg: fmt.Sprintf(format, a...), hint: hint}
}

// StepError wraps a fatal step failure with the step that produced it.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string { return fmt.Sprintf("%s: %v", e.Step, e.Err) }

func (e *StepError) Unwrap() error { return e.Err }

// Run executes steps in order, printing progress. Skips and warnings let the
// run continue; any other error aborts immediately.
func Run(ctx context.Context, steps []Step) ([]Result, error) {
	var results []Result

	for _, step := range steps {
		name := step.Name()
		ui.StepStarted(name)

		detail, err := step.Run(ctx)

		var skip *skipError
		var warn *warnError
		switch {
		case err == nil:
			ui.StepDone(name, detail)
			results = append(results, Result{Name: name, Detail: detail})
		case errors.As(err, &skip):
			ui.StepSkipped(name, skip.reason)
			results = append(results, Result{Name: name, Skipped: true, Detail: skip.reason})
		case errors.As(err, &warn):
			ui.Warn(fmt.Sprintf("%s: %s", name, warn.msg))
			if warn.hint != "" {
				fmt.Print(warn.hint)
			}
			results = append(results, Result{Name: name, Err: err})
		default:
			serr := &StepError{Step: name, Err: err}
			results = append(results, Result{Name: name, Err: serr})
			return results, serr
		}
	}

	return results, nil
}
