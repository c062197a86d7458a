package command

import (
	"context"
	"os"
	"path/filepath"
)

// Environment injected for the provider agent so it can find its
// exe-unit plugin descriptors.
const (
	exeUnitPathEnv = "EXE_UNIT_PATH"
	pluginDescGlob = "ya-*.json"
)

// pluginsRelDir is the plugin directory probed under the user's home.
var pluginsRelDir = filepath.Join(".local", "lib", "yagna", "plugins")

// ProviderConfig is the provider agent's configuration as reported by
// `ya-provider config get`. All fields are optional.
type ProviderConfig struct {
	NodeName *string `json:"node_name"`
	Subnet   *string `json:"subnet"`
	Account  *string `json:"account"`
}

// ProviderCommand builds and runs typed queries against the ya-provider
// agent.
type ProviderCommand struct {
	spec Spec
}

// Provider returns a command builder for the provider agent. It probes
// the user's home directory for the plugin directory and, when present,
// injects EXE_UNIT_PATH pointing at the descriptor glob inside it.
// Absence of the plugin directory is not an error; the variable is
// simply omitted.
func (s *ExecutableSet) Provider() *ProviderCommand {
	spec := Spec{Program: s.Program(ProviderBin)}

	if home, err := userHomeDir(); err == nil {
		pluginsDir := filepath.Join(home, pluginsRelDir)
		if dirExists(pluginsDir) {
			spec.Env = map[string]string{
				exeUnitPathEnv: filepath.Join(pluginsDir, pluginDescGlob),
			}
		}
	}

	return &ProviderCommand{spec: spec}
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Config fetches the provider agent's configuration.
func (c *ProviderCommand) Config(ctx context.Context) (*ProviderConfig, error) {
	var config ProviderConfig
	if err := runJSON(ctx, c.spec.WithArgs("config", "get"), &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// VersionRaw fetches and parses the agent's free-text version banner.
func (c *ProviderCommand) VersionRaw(ctx context.Context) (*VersionRaw, error) {
	spec := c.spec.WithArgs("--version")
	stdout, err := run(ctx, spec)
	if err != nil {
		return nil, err
	}
	return decodeVersionBanner(spec.String(), stdout)
}
