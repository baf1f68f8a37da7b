package wizard

import (
	"bytes"
	"text/template"
)

const configTemplate = `# local-ai-packaged configuration
# Used by the localai CLI; every key has a built-in default.

project: {{ .Project }}
profile: {{ .Profile }}
startup_wait: {{ .WaitSeconds }}s

compose_file: docker-compose.yml
env_file: .env

supabase:
  dir: supabase
  repo_url: https://github.com/supabase/supabase.git
  branch: master
  sparse_dir: docker

searxng:
  dir: searxng
  settings_file: settings.yml
  base_file: settings-base.yml
  service: searxng
  marker_path: /etc/searxng/uwsgi.ini
  placeholder: ultrasecretkey
`

// GenerateConfig renders a localai.yml from wizard answers.
func GenerateConfig(answers Answers) (string, error) {
	tmpl, err := template.New("config").Parse(configTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, answers); err != nil {
		return "", err
	}

	return buf.String(), nil
}
