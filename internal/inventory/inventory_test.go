package inventory

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadParsesServices(t *testing.T) {
	services, missing, err := Load(context.Background(), "localai",
		[]string{filepath.Join("testdata", "docker-compose.yml")})
	require.NoError(t, err)
	assert.Empty(t, missing)
	require.Len(t, services, 4)

	// Sorted by name.
	assert.Equal(t, "n8n", services[0].Name)
	assert.Equal(t, "ollama-cpu", services[1].Name)
	assert.Equal(t, "ollama-gpu", services[2].Name)
	assert.Equal(t, "searxng", services[3].Name)

	assert.Equal(t, "n8nio/n8n:latest", services[0].Image)
	assert.Equal(t, []string{"gpu-nvidia"}, services[2].Profiles)
}

func TestLoadReportsMissingFiles(t *testing.T) {
	services, missing, err := Load(context.Background(), "localai",
		[]string{filepath.Join("testdata", "nope.yml")})
	require.NoError(t, err)
	assert.Empty(t, services)
	assert.Equal(t, []string{filepath.Join("testdata", "nope.yml")}, missing)
}

func TestMarkRunning(t *testing.T) {
	services := []Service{
		{Name: "n8n"},
		{Name: "searxng"},
		{Name: "ollama-cpu"},
	}

	MarkRunning(services, []string{"localai-searxng-1", "localai-n8n-1"})

	assert.True(t, services[0].Running)
	assert.True(t, services[1].Running)
	assert.False(t, services[2].Running)
}
