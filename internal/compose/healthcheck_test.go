package compose

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const supabaseCompose = `services:
  realtime-dev.supabase-realtime:
    container_name: realtime-dev.supabase-realtime
    image: supabase/realtime:v2.30.34
    restart: unless-stopped
    healthcheck:
      test:
        [
          "CMD",
          "curl",
          "-sSfL",
          "--head",
          "-o",
          "/dev/null",
          "-H",
          "Authorization: Bearer ${ANON_KEY}",
          "http://localhost:4000/api/tenants/realtime-dev/health"
        ]
      timeout: 5s
      interval: 5s
      retries: 3
    environment:
      PORT: 4000
      DB_HOST: ${POSTGRES_HOST}
  rest:
    image: postgrest/postgrest:v12.2.0
`

func TestFixRealtimeHealthcheck(t *testing.T) {
	fixed, changed, err := FixRealtimeHealthcheck(supabaseCompose)
	require.NoError(t, err)
	require.True(t, changed)

	assert.NotContains(t, fixed, "/api/tenants/realtime-dev/health")
	assert.NotContains(t, fixed, "Authorization: Bearer")
	assert.Contains(t, fixed, `"http://localhost:4000/"`)

	// Surrounding content is untouched.
	assert.Contains(t, fixed, "container_name: realtime-dev.supabase-realtime")
	assert.Contains(t, fixed, "    environment:\n      PORT: 4000")
	assert.Contains(t, fixed, "postgrest/postgrest")
}

func TestFixRealtimeHealthcheckExactBlock(t *testing.T) {
	fixed, changed, err := FixRealtimeHealthcheck(supabaseCompose)
	require.NoError(t, err)
	require.True(t, changed)

	assert.Contains(t, fixed, newHealthcheckBlock)
}

func TestFixRealtimeHealthcheckStaysYAML(t *testing.T) {
	fixed, _, err := FixRealtimeHealthcheck(supabaseCompose)
	require.NoError(t, err)
	assert.NoError(t, CheckWellFormed(fixed))
}

func TestFixRealtimeHealthcheckIdempotent(t *testing.T) {
	fixed, _, err := FixRealtimeHealthcheck(supabaseCompose)
	require.NoError(t, err)

	again, changed, err := FixRealtimeHealthcheck(fixed)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, fixed, again)
}

func TestFixRealtimeHealthcheckNoTrigger(t *testing.T) {
	content := strings.ReplaceAll(supabaseCompose,
		"http://localhost:4000/api/tenants/realtime-dev/health", "http://localhost:4000/")

	out, changed, err := FixRealtimeHealthcheck(content)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, content, out)
}

func TestFixRealtimeHealthcheckMissingEnvironment(t *testing.T) {
	content := strings.ReplaceAll(supabaseCompose, "environment:", "env_file:")

	_, changed, err := FixRealtimeHealthcheck(content)
	assert.Error(t, err)
	assert.False(t, changed)
}

func TestFixRealtimeHealthcheckMissingHealthcheckAfterService(t *testing.T) {
	// The healthcheck sits before the service name, so no section follows it.
	content := `services:
  db:
    healthcheck:
      test: ["CMD", "curl", "http://localhost:4000/api/tenants/realtime-dev/health"]
  realtime-dev.supabase-realtime:
    image: supabase/realtime:v2.30.34
    environment:
      PORT: 4000
`

	_, changed, err := FixRealtimeHealthcheck(content)
	assert.Error(t, err)
	assert.False(t, changed)
}
