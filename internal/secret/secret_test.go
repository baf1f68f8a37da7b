package secret

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseSettings = `use_default_settings: true
server:
  secret_key: "ultrasecretkey"
  limiter: true
redis:
  url: redis://redis:6379/0 # ultrasecretkey
`

type fixedSource struct {
	token string
}

func (f fixedSource) Token() (string, error) { return f.token, nil }

func newProvisioner(t *testing.T, source TokenSource) *Provisioner {
	t.Helper()
	dir := t.TempDir()

	basePath := filepath.Join(dir, "settings-base.yml")
	require.NoError(t, os.WriteFile(basePath, []byte(baseSettings), 0644))

	return &Provisioner{
		BasePath:    basePath,
		TargetPath:  filepath.Join(dir, "settings.yml"),
		Placeholder: "ultrasecretkey",
		Source:      source,
	}
}

func TestProvisionCreatesFromTemplate(t *testing.T) {
	p := newProvisioner(t, fixedSource{token: "deadbeef"})

	res, err := p.Provision()
	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.Equal(t, 2, res.Substituted)

	data, err := os.ReadFile(p.TargetPath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "ultrasecretkey")
	assert.Contains(t, string(data), `secret_key: "deadbeef"`)
}

func TestProvisionGeneratesHexToken(t *testing.T) {
	p := newProvisioner(t, nil) // default crypto/rand source

	_, err := p.Provision()
	require.NoError(t, err)

	data, err := os.ReadFile(p.TargetPath)
	require.NoError(t, err)

	re := regexp.MustCompile(`secret_key: "([0-9a-f]{64})"`)
	match := re.FindStringSubmatch(string(data))
	require.NotNil(t, match, "secret_key should be a 64-character hex token")
}

func TestProvisionIdempotent(t *testing.T) {
	p := newProvisioner(t, fixedSource{token: "cafe"})

	_, err := p.Provision()
	require.NoError(t, err)

	first, err := os.ReadFile(p.TargetPath)
	require.NoError(t, err)

	// Second run finds no placeholder and must not touch the file.
	res, err := p.Provision()
	require.NoError(t, err)
	assert.False(t, res.Created)
	assert.Zero(t, res.Substituted)

	second, err := os.ReadFile(p.TargetPath)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestProvisionKeepsExistingTarget(t *testing.T) {
	p := newProvisioner(t, fixedSource{token: "beef"})

	existing := "server:\n  secret_key: \"already-set\"\n"
	require.NoError(t, os.WriteFile(p.TargetPath, []byte(existing), 0644))

	res, err := p.Provision()
	require.NoError(t, err)
	assert.False(t, res.Created)
	assert.Zero(t, res.Substituted)

	data, err := os.ReadFile(p.TargetPath)
	require.NoError(t, err)
	assert.Equal(t, existing, string(data))
}

func TestProvisionTemplateMissing(t *testing.T) {
	dir := t.TempDir()
	p := &Provisioner{
		BasePath:    filepath.Join(dir, "nope.yml"),
		TargetPath:  filepath.Join(dir, "settings.yml"),
		Placeholder: "ultrasecretkey",
	}

	_, err := p.Provision()
	assert.ErrorIs(t, err, ErrTemplateMissing)

	_, statErr := os.Stat(p.TargetPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRandomSourceTokens(t *testing.T) {
	var source RandomSource

	a, err := source.Token()
	require.NoError(t, err)
	b, err := source.Token()
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.Regexp(t, "^[0-9a-f]{64}$", a)
	assert.NotEqual(t, a, b)
}

func TestRemediationMentionsEveryPlatform(t *testing.T) {
	out := Remediation("searxng/settings.yml")

	assert.Contains(t, out, "sed -i \"s|ultrasecretkey|")
	assert.Contains(t, out, "sed -i ''")
	assert.Contains(t, out, "PowerShell")
	assert.Contains(t, out, "searxng/settings.yml")
}
