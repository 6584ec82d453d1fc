package launchers

import (
	"fmt"

	"github.com/cargo-launcher/cargo-launcher/internal/core/domain/launcher"
	"github.com/cargo-launcher/cargo-launcher/internal/core/domain/project"
	"github.com/cargo-launcher/cargo-launcher/internal/core/ports"
)

// Selector maps a launcher kind to its backend, bound to the shared
// launch configuration and collaborators.
type Selector struct {
	conf *LaunchConfig
	deps Deps
}

// NewSelector creates a new backend selector
func NewSelector(conf *LaunchConfig, deps Deps) *Selector {
	return &Selector{conf: conf, deps: deps}
}

// Select implements ports.BackendSelector
func (s *Selector) Select(kind launcher.Kind, meta project.Metadata) (ports.Backend, error) {
	switch kind {
	case launcher.KindAlfred:
		return NewAlfred(meta, s.conf, s.deps), nil
	case launcher.KindHain:
		return NewHain(meta, s.conf, s.deps), nil
	case launcher.KindAlbert:
		return NewAlbert(meta, s.conf, s.deps), nil
	default:
		return nil, fmt.Errorf("%w: %s", launcher.ErrUnknownLauncher, kind)
	}
}

// Config returns the shared launch configuration
func (s *Selector) Config() *LaunchConfig {
	return s.conf
}

var _ ports.BackendSelector = (*Selector)(nil)
