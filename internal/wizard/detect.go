package wizard

import (
	"os"
	"os/exec"
)

// DetectionResult holds what was auto-detected on the system.
type DetectionResult struct {
	DockerAvailable  bool
	GitAvailable     bool
	NvidiaGPU        bool
	ComposeFile      bool // docker-compose.yml at the repo root
	EnvFile          bool // .env at the repo root
	SupabaseCheckout bool // supabase/ directory already present
}

// Detector abstracts filesystem and path lookups for testing.
type Detector interface {
	LookPath(name string) (string, error)
	Stat(path string) (os.FileInfo, error)
}

// OSDetector uses the real OS for detection.
type OSDetector struct{}

func (OSDetector) LookPath(name string) (string, error)  { return exec.LookPath(name) }
func (OSDetector) Stat(path string) (os.FileInfo, error) { return os.Stat(path) }

// Detect scans the environment for the tools and files the stack needs.
func Detect(d Detector) DetectionResult {
	if d == nil {
		d = OSDetector{}
	}

	result := DetectionResult{}

	if _, err := d.LookPath("docker"); err == nil {
		result.DockerAvailable = true
	}
	if _, err := d.LookPath("git"); err == nil {
		result.GitAvailable = true
	}
	// nvidia-smi in PATH is a good enough signal to suggest the GPU profile.
	if _, err := d.LookPath("nvidia-smi"); err == nil {
		result.NvidiaGPU = true
	}

	if _, err := d.Stat("docker-compose.yml"); err == nil {
		result.ComposeFile = true
	}
	if _, err := d.Stat(".env"); err == nil {
		result.EnvFile = true
	}
	if info, err := d.Stat("supabase"); err == nil && info.IsDir() {
		result.SupabaseCheckout = true
	}

	return result
}
