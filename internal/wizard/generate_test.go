package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestGenerateConfigIsValidYAML(t *testing.T) {
	content, err := GenerateConfig(Answers{
		Project:     "localai",
		Profile:     "gpu-nvidia",
		WaitSeconds: 15,
	})
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(content), &doc))

	assert.Equal(t, "localai", doc["project"])
	assert.Equal(t, "gpu-nvidia", doc["profile"])
	assert.Equal(t, "15s", doc["startup_wait"])

	searxng, ok := doc["searxng"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ultrasecretkey", searxng["placeholder"])
	assert.Equal(t, "/etc/searxng/uwsgi.ini", searxng["marker_path"])

	supabase, ok := doc["supabase"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "docker", supabase["sparse_dir"])
}

func TestGenerateConfigProfiles(t *testing.T) {
	for _, profile := range []string{"cpu", "gpu-nvidia", "gpu-amd", "none"} {
		t.Run(profile, func(t *testing.T) {
			content, err := GenerateConfig(Answers{Project: "localai", Profile: profile, WaitSeconds: 10})
			require.NoError(t, err)
			assert.Contains(t, content, "profile: "+profile)
		})
	}
}
