// Package inventory enumerates the services declared across the stack's
// compose files, for the status command.
package inventory

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/compose-spec/compose-go/v2/cli"
)

// Service is one declared compose service.
type Service struct {
	Name     string
	Image    string
	Profiles []string
	Source   string // compose file it was declared in
	Running  bool
}

// Load parses each existing compose file and returns its services sorted by
// name. Missing files are reported back so the caller can hint at running
// start first; parse failures abort.
func Load(ctx context.Context, project string, paths []string) (services []Service, missing []string, err error) {
	for _, path := range paths {
		if _, statErr := os.Stat(path); statErr != nil {
			missing = append(missing, path)
			continue
		}

		opts, err := cli.NewProjectOptions(
			[]string{path},
			cli.WithName(project),
			cli.WithDotEnv,
			cli.WithInterpolation(false),
			cli.WithProfiles([]string{"*"}),
		)
		if err != nil {
			return nil, missing, fmt.Errorf("project options for %s: %w", path, err)
		}

		project, err := cli.ProjectFromOptions(ctx, opts)
		if err != nil {
			return nil, missing, fmt.Errorf("parsing %s: %w", path, err)
		}

		for name, svc := range project.Services {
			services = append(services, Service{
				Name:     name,
				Image:    svc.Image,
				Profiles: svc.Profiles,
				Source:   path,
			})
		}
	}

	sort.Slice(services, func(i, j int) bool { return services[i].Name < services[j].Name })
	return services, missing, nil
}

// MarkRunning flags each service whose name appears as a substring of a
// running container name. Compose names containers project-service-replica,
// so substring matching is the reliable direction.
func MarkRunning(services []Service, containerNames []string) {
	for i := range services {
		for _, ctr := range containerNames {
			if strings.Contains(ctr, services[i].Name) {
				services[i].Running = true
				break
			}
		}
	}
}
