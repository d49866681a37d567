// Package config loads the guardpost.yaml file that declares groups and
// shell guards. Loading is the only configuration concern here; nothing
// is ever written back.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ppiankov/guardpost/internal/guard"
)

// DefaultPath is consulted when no --config flag is given.
const DefaultPath = "guardpost.yaml"

// GroupConfig declares a group and its halt-on-fail policy.
type GroupConfig struct {
	Name       string `yaml:"name"`
	HaltOnFail bool   `yaml:"halt_on_fail"`
}

// GuardConfig declares one shell guard.
type GuardConfig struct {
	Name     string   `yaml:"name"`
	Group    string   `yaml:"group"`
	Patterns []string `yaml:"patterns"`
	Command  string   `yaml:"cmd"`
	// Tasks lists the task names this guard implements. Empty means
	// run_on_changes plus run_all.
	Tasks []string `yaml:"tasks"`
}

// Config is the parsed guardpost.yaml.
type Config struct {
	// Dir is the tree to watch; "." when unset.
	Dir    string        `yaml:"dir"`
	Groups []GroupConfig `yaml:"groups"`
	Guards []GuardConfig `yaml:"guards"`
}

// Load reads the config from path. Empty path falls back to DefaultPath.
// A missing file at the fallback returns an empty config; a missing file
// named explicitly, or invalid YAML, is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return &Config{Dir: "."}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	for _, g := range c.Guards {
		if g.Name == "" {
			return fmt.Errorf("guard with no name")
		}
		if g.Command == "" {
			return fmt.Errorf("guard %s: cmd is required", g.Name)
		}
		for _, task := range g.Tasks {
			if _, ok := guard.ParseTaskKind(task); !ok {
				return fmt.Errorf("guard %s: unknown task %q", g.Name, task)
			}
		}
	}
	return nil
}

// TaskKinds resolves a guard's declared task names into kinds, applying
// the default vocabulary when none are listed.
func (g GuardConfig) TaskKinds() []guard.TaskKind {
	if len(g.Tasks) == 0 {
		return []guard.TaskKind{guard.TaskRunAll, guard.TaskRunOnChanges}
	}
	kinds := make([]guard.TaskKind, 0, len(g.Tasks))
	for _, name := range g.Tasks {
		if k, ok := guard.ParseTaskKind(name); ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}
