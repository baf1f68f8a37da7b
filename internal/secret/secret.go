// Package secret provisions the SearXNG secret key: it materializes
// settings.yml from the base template and swaps the well-known placeholder
// for a freshly generated token.
package secret

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrTemplateMissing reports that the base settings template does not exist.
// Callers treat this as a skippable condition, not a fatal one.
var ErrTemplateMissing = errors.New("settings template not found")

// TokenSource produces secret tokens. The default is crypto/rand; tests
// substitute a deterministic source.
type TokenSource interface {
	Token() (string, error)
}

// RandomSource generates 32 bytes of cryptographically secure randomness,
// hex-encoded to 64 characters.
type RandomSource struct{}

func (RandomSource) Token() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Provisioner ensures a settings file exists and carries a real secret
// instead of the placeholder.
type Provisioner struct {
	BasePath    string // template, e.g. searxng/settings-base.yml
	TargetPath  string // generated file, e.g. searxng/settings.yml
	Placeholder string // e.g. "ultrasecretkey"
	Source      TokenSource
}

// Result describes what Provision did, for user-facing status lines.
type Result struct {
	Created     bool // target was created from the template
	Substituted int  // placeholder occurrences replaced
}

// Provision copies the template into place if the target is missing, then
// replaces every occurrence of the placeholder with a fresh token. A target
// that no longer contains the placeholder is left untouched, so re-running
// is a no-op.
func (p *Provisioner) Provision() (Result, error) {
	var res Result

	if _, err := os.Stat(p.BasePath); err != nil {
		return res, fmt.Errorf("%w: %s", ErrTemplateMissing, p.BasePath)
	}

	if _, err := os.Stat(p.TargetPath); err != nil {
		data, err := os.ReadFile(p.BasePath)
		if err != nil {
			return res, fmt.Errorf("reading template %s: %w", p.BasePath, err)
		}
		if err := os.WriteFile(p.TargetPath, data, 0644); err != nil {
			return res, fmt.Errorf("creating %s: %w", p.TargetPath, err)
		}
		res.Created = true
	}

	data, err := os.ReadFile(p.TargetPath)
	if err != nil {
		return res, fmt.Errorf("reading %s: %w", p.TargetPath, err)
	}

	content := string(data)
	count := strings.Count(content, p.Placeholder)
	if count == 0 {
		return res, nil
	}

	source := p.Source
	if source == nil {
		source = RandomSource{}
	}
	token, err := source.Token()
	if err != nil {
		return res, err
	}

	replaced := strings.ReplaceAll(content, p.Placeholder, token)
	if err := os.WriteFile(p.TargetPath, []byte(replaced), 0644); err != nil {
		return res, fmt.Errorf("writing %s: %w", p.TargetPath, err)
	}
	res.Substituted = count

	return res, nil
}

// Remediation returns the manual commands for generating the secret on each
// supported platform, printed when provisioning fails.
func Remediation(settingsPath string) string {
	var b strings.Builder
	b.WriteString("You may need to manually generate the secret key using the commands:\n")
	fmt.Fprintf(&b, "  - Linux: sed -i \"s|ultrasecretkey|$(openssl rand -hex 32)|g\" %s\n", settingsPath)
	fmt.Fprintf(&b, "  - macOS: sed -i '' \"s|ultrasecretkey|$(openssl rand -hex 32)|g\" %s\n", settingsPath)
	b.WriteString("  - Windows (PowerShell):\n")
	b.WriteString("    $randomBytes = New-Object byte[] 32\n")
	b.WriteString("    (New-Object Security.Cryptography.RNGCryptoServiceProvider).GetBytes($randomBytes)\n")
	b.WriteString("    $secretKey = -join ($randomBytes | ForEach-Object { \"{0:x2}\" -f $_ })\n")
	fmt.Fprintf(&b, "    (Get-Content %s) -replace 'ultrasecretkey', $secretKey | Set-Content %s\n", settingsPath, settingsPath)
	return b.String()
}
