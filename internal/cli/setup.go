package cli

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ppiankov/guardpost/internal/config"
	"github.com/ppiankov/guardpost/internal/guard"
	"github.com/ppiankov/guardpost/internal/guards/shell"
	"github.com/ppiankov/guardpost/internal/logging"
	"github.com/ppiankov/guardpost/internal/orchestrator"
	"github.com/ppiankov/guardpost/internal/registry"
	"github.com/ppiankov/guardpost/internal/watch"
)

// session is everything a command needs after config resolution.
type session struct {
	cfg  *config.Config
	reg  *registry.Registry
	orch *orchestrator.Orchestrator
	log  *zap.SugaredLogger
}

// newSession loads config and assembles the registry and orchestrator.
func newSession() (*session, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	log, err := logging.New(verbose)
	if err != nil {
		return nil, err
	}

	reg := registry.New()
	for _, gc := range cfg.Groups {
		reg.AddGroup(&guard.Group{Name: gc.Name, HaltOnFail: gc.HaltOnFail})
	}
	for _, gc := range cfg.Guards {
		g := shell.New(gc.Name, gc.Group, gc.Patterns, gc.Command, gc.TaskKinds()...)
		if err := reg.Add(g); err != nil {
			return nil, fmt.Errorf("register guard %s: %w", gc.Name, err)
		}
	}

	return &session{
		cfg:  cfg,
		reg:  reg,
		orch: orchestrator.New(reg, watch.NewMatcher(), log),
		log:  log,
	}, nil
}

// scopeFromFlags resolves --guard / --group flags into a scope.
func (s *session) scopeFromFlags(guardName, groupName string) (registry.Scope, error) {
	if guardName != "" {
		for _, g := range s.reg.Guards() {
			if g.Title() == guardName {
				return registry.Scope{Guard: g}, nil
			}
		}
		return registry.Scope{}, fmt.Errorf("unknown guard %q", guardName)
	}
	if groupName != "" {
		if s.reg.Group(groupName) == nil {
			return registry.Scope{}, fmt.Errorf("unknown group %q", groupName)
		}
		return registry.Scope{Group: groupName}, nil
	}
	return registry.Scope{}, nil
}
