package state

import (
	"fmt"
	"slices"
)

// Strategies lists the valid route computation strategy names.
var Strategies = []string{"dv", "ls"}

// ScenarioCfg bundles everything needed for one simulator run, as read from
// a YAML scenario file or assembled from command line arguments.
type ScenarioCfg struct {
	Strategy string `yaml:"strategy"`           // "dv" or "ls"
	Topology string `yaml:"topology"`           // initial topology feed
	Messages string `yaml:"messages"`           // message feed
	Changes  string `yaml:"changes"`            // topology change feed
	Output   string `yaml:"output"`             // output record stream
	LogPath  string `yaml:"log_path,omitempty"` // if not empty, logs are also written to this file
	Verbose  bool   `yaml:"verbose,omitempty"`
}

func ScenarioValidator(cfg *ScenarioCfg) error {
	if !slices.Contains(Strategies, cfg.Strategy) {
		return fmt.Errorf("unknown strategy %q, must be one of %v", cfg.Strategy, Strategies)
	}
	paths := []struct {
		name string
		path string
	}{
		{"topology", cfg.Topology},
		{"messages", cfg.Messages},
		{"changes", cfg.Changes},
		{"output", cfg.Output},
	}
	for _, p := range paths {
		if p.path == "" {
			return fmt.Errorf("scenario is missing the %s file path", p.name)
		}
	}
	return nil
}
