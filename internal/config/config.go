package config

import (
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Project     string        `mapstructure:"project"`
	ComposeFile string        `mapstructure:"compose_file"`
	EnvFile     string        `mapstructure:"env_file"`
	Profile     string        `mapstructure:"profile"`
	StartupWait time.Duration `mapstructure:"startup_wait"`
	Supabase    Supabase      `mapstructure:"supabase"`
	SearXNG     SearXNG       `mapstructure:"searxng"`
}

type Supabase struct {
	Dir       string `mapstructure:"dir"`
	RepoURL   string `mapstructure:"repo_url"`
	Branch    string `mapstructure:"branch"`
	SparseDir string `mapstructure:"sparse_dir"`
}

type SearXNG struct {
	Dir          string `mapstructure:"dir"`
	SettingsFile string `mapstructure:"settings_file"`
	BaseFile     string `mapstructure:"base_file"`
	Service      string `mapstructure:"service"`
	MarkerPath   string `mapstructure:"marker_path"`
	Placeholder  string `mapstructure:"placeholder"`
}

// Profiles are the accepted values for --profile. "none" suppresses profile
// filtering on compose invocations entirely.
var Profiles = []string{"cpu", "gpu-nvidia", "gpu-amd", "none"}

func ValidProfile(p string) bool {
	for _, known := range Profiles {
		if p == known {
			return true
		}
	}
	return false
}

func Load() (*Config, error) {
	cfg := &Config{
		Project:     "localai",
		ComposeFile: "docker-compose.yml",
		EnvFile:     ".env",
		Profile:     "cpu",
		StartupWait: 10 * time.Second,
	}
	cfg.Supabase = Supabase{
		Dir:       "supabase",
		RepoURL:   "https://github.com/supabase/supabase.git",
		Branch:    "master",
		SparseDir: "docker",
	}
	cfg.SearXNG = SearXNG{
		Dir:          "searxng",
		SettingsFile: "settings.yml",
		BaseFile:     "settings-base.yml",
		Service:      "searxng",
		MarkerPath:   "/etc/searxng/uwsgi.ini",
		Placeholder:  "ultrasecretkey",
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SupabaseComposePath is the compose file inside the sparse checkout.
func (c *Config) SupabaseComposePath() string {
	return filepath.Join(c.Supabase.Dir, c.Supabase.SparseDir, "docker-compose.yml")
}

// SupabaseEnvPath is where the root env file gets copied to.
func (c *Config) SupabaseEnvPath() string {
	return filepath.Join(c.Supabase.Dir, c.Supabase.SparseDir, ".env")
}

// SettingsPath is the generated SearXNG settings file.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.SearXNG.Dir, c.SearXNG.SettingsFile)
}

// SettingsBasePath is the SearXNG settings template.
func (c *Config) SettingsBasePath() string {
	return filepath.Join(c.SearXNG.Dir, c.SearXNG.BaseFile)
}
