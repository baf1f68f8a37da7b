package wizard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

// Answers holds all user responses from the wizard.
type Answers struct {
	Project     string
	Profile     string
	WaitSeconds int
}

// Run executes the interactive wizard and returns the user's answers.
func Run(detection DetectionResult) (*Answers, error) {
	answers := &Answers{
		Project:     "localai",
		Profile:     "cpu",
		WaitSeconds: 10,
	}
	if detection.NvidiaGPU {
		answers.Profile = "gpu-nvidia"
	}

	var hints []string
	if detection.DockerAvailable {
		hints = append(hints, "Docker detected")
	}
	if detection.NvidiaGPU {
		hints = append(hints, "NVIDIA GPU detected (nvidia-smi found)")
	}
	if detection.SupabaseCheckout {
		hints = append(hints, "Existing supabase/ checkout found")
	}

	desc := "Pick the hardware profile for the local AI services."
	if len(hints) > 0 {
		desc += "\n\nAuto-detected:\n  " + strings.Join(hints, "\n  ")
	}

	waitStr := strconv.Itoa(answers.WaitSeconds)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which profile should start use by default?").
				Description(desc).
				Options(
					huh.NewOption("CPU only", "cpu"),
					huh.NewOption("NVIDIA GPU", "gpu-nvidia"),
					huh.NewOption("AMD GPU", "gpu-amd"),
					huh.NewOption("No profile filtering", "none"),
				).
				Value(&answers.Profile),
			huh.NewInput().
				Title("Compose project name").
				Value(&answers.Project),
			huh.NewInput().
				Title("Seconds to wait for Supabase before starting local AI").
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < 0 {
						return fmt.Errorf("enter a non-negative number of seconds")
					}
					return nil
				}).
				Value(&waitStr),
		),
	)

	if err := form.Run(); err != nil {
		return nil, err
	}

	if n, err := strconv.Atoi(waitStr); err == nil {
		answers.WaitSeconds = n
	}

	return answers, nil
}
