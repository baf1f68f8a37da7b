// Package docker is a thin wrapper over the Docker API used to observe
// runtime state. Nothing here mutates containers: the callers only need the
// answers to "is a container with this name running" and "does this file
// exist inside it".
package docker

import (
	"context"
	"fmt"
	"strings"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/client"
	"github.com/docker/docker/errdefs"
)

// Client wraps the Docker SDK client.
type Client struct {
	inner *client.Client
}

// New creates a client from the environment (DOCKER_HOST etc.).
func New() (*Client, error) {
	inner, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("create docker client: %w", err)
	}
	return &Client{inner: inner}, nil
}

// Ping validates connectivity to the Docker daemon.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.inner.Ping(ctx); err != nil {
		return fmt.Errorf("docker ping: %w", err)
	}
	return nil
}

// FirstRunning returns the name of the first running container whose name
// contains substr, or "" when none match.
func (c *Client) FirstRunning(ctx context.Context, substr string) (string, error) {
	list, err := c.inner.ContainerList(ctx, container.ListOptions{
		Filters: filters.NewArgs(filters.Arg("name", substr)),
	})
	if err != nil {
		return "", fmt.Errorf("listing containers: %w", err)
	}
	for _, ctr := range list {
		for _, name := range ctr.Names {
			name = strings.TrimPrefix(name, "/")
			if name != "" {
				return name, nil
			}
		}
	}
	return "", nil
}

// HasFile reports whether path exists inside the named container.
func (c *Client) HasFile(ctx context.Context, containerName, path string) (bool, error) {
	if _, err := c.inner.ContainerStatPath(ctx, containerName, path); err != nil {
		if errdefs.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat %s in %s: %w", path, containerName, err)
	}
	return true, nil
}

// RunningNames lists the names of all running containers.
func (c *Client) RunningNames(ctx context.Context) ([]string, error) {
	list, err := c.inner.ContainerList(ctx, container.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("listing containers: %w", err)
	}
	var names []string
	for _, ctr := range list {
		for _, name := range ctr.Names {
			names = append(names, strings.TrimPrefix(name, "/"))
		}
	}
	return names, nil
}

// Close releases resources held by the client.
func (c *Client) Close() error {
	if c == nil || c.inner == nil {
		return nil
	}
	return c.inner.Close()
}
