package research

import (
	"fmt"

	"labelscan/internal/config"
	"labelscan/internal/port"
)

// ProviderFactory is a function that creates a Researcher from a researcher config.
type ProviderFactory func(cfg *config.ResearcherConfig) (port.Researcher, error)

// registry of researcher provider factories, populated by init() in each
// provider package or explicitly via RegisterProvider.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a researcher provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewResearcher creates a Researcher from a researcher config using the
// registered factory.
func NewResearcher(cfg *config.ResearcherConfig) (port.Researcher, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown researcher provider: %s", cfg.Provider)
	}
	return factory(cfg)
}
