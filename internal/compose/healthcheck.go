package compose

import (
	"fmt"
	"strings"
)

// Trigger substrings identifying the obsolete Realtime healthcheck. All
// three must be present before any rewrite is attempted.
const (
	obsoleteHealthPath = "/api/tenants/realtime-dev/health"
	healthcheckKey     = "healthcheck:"
	realtimeService    = "realtime-dev.supabase-realtime"
	environmentKey     = "environment:"
)

// newHealthcheckBlock is the corrected configuration: an unauthenticated
// HEAD request against the service's root URL, which returns 200 without a
// token while the tenant health endpoint 403s.
const newHealthcheckBlock = `healthcheck:
      test:
        [
          "CMD",
          "curl",
          "-sSfL",
          "--head",
          "-o",
          "/dev/null",
          "http://localhost:4000/"
        ]
      timeout: 5s
      interval: 5s
      retries: 3
`

// FixRealtimeHealthcheck replaces the Realtime service's authenticated
// healthcheck with newHealthcheckBlock. Content without the trigger
// substrings passes through untouched. When the triggers match but the
// healthcheck/environment markers cannot be located, an error is returned
// and the content is not modified.
func FixRealtimeHealthcheck(content string) (string, bool, error) {
	if !strings.Contains(content, obsoleteHealthPath) ||
		!strings.Contains(content, healthcheckKey) ||
		!strings.Contains(content, realtimeService) {
		return content, false, nil
	}

	serviceIdx := strings.Index(content, realtimeService)
	start := strings.Index(content[serviceIdx:], healthcheckKey)
	if start == -1 {
		return content, false, fmt.Errorf("healthcheck section not found after %s service", realtimeService)
	}
	start += serviceIdx

	envIdx := strings.Index(content[start:], environmentKey)
	if envIdx == -1 {
		return content, false, fmt.Errorf("environment section not found after healthcheck")
	}
	envIdx += start

	// End the replaced span at the beginning of the environment line so its
	// indentation survives the substitution.
	end := strings.LastIndex(content[:envIdx], "\n")
	if end < start {
		return content, false, fmt.Errorf("environment section not on its own line")
	}
	end++

	return content[:start] + newHealthcheckBlock + content[end:], true, nil
}
