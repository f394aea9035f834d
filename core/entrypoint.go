package core

import (
	"fmt"
	"log/slog"
	"os"
	"path"

	"github.com/encodeous/routesim/feed"
	"github.com/encodeous/routesim/state"
	"github.com/encodeous/tint"
	slogmulti "github.com/samber/slog-multi"
)

func newLogger(prefix, logPath string, verbose bool) (*slog.Logger, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handlers := make([]slog.Handler, 0)
	handlers = append(handlers,
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:        level,
			AddSource:    false,
			CustomPrefix: prefix,
			ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
				if attr.Key == "time" {
					return slog.Attr{}
				}
				return attr
			},
		}))

	if logPath != "" {
		err := os.MkdirAll(path.Dir(logPath), 0700)
		if err != nil {
			return nil, err
		}
		f, err := os.OpenFile(logPath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0700)
		if err != nil {
			return nil, err
		}
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	}

	return slog.New(slogmulti.Fanout(handlers...)), nil
}

// LoadInputs checks that every input feed exists before parsing any of
// them, so a missing file can never leave partial output behind, then
// parses all three feeds.
func LoadInputs(cfg state.ScenarioCfg) (*state.Graph, []state.Message, []state.Change, error) {
	inputs := []struct {
		name string
		path string
	}{
		{"topology", cfg.Topology},
		{"messages", cfg.Messages},
		{"changes", cfg.Changes},
	}
	for _, in := range inputs {
		if _, err := os.Stat(in.path); err != nil {
			return nil, nil, nil, fmt.Errorf("%s file: %w", in.name, err)
		}
	}

	topFile, err := os.Open(cfg.Topology)
	if err != nil {
		return nil, nil, nil, err
	}
	defer topFile.Close()
	links, err := feed.ParseTopology(topFile)
	if err != nil {
		return nil, nil, nil, err
	}
	graph, err := state.NewGraphFromLinks(links)
	if err != nil {
		return nil, nil, nil, err
	}

	msgFile, err := os.Open(cfg.Messages)
	if err != nil {
		return nil, nil, nil, err
	}
	defer msgFile.Close()
	msgs, err := feed.ParseMessages(msgFile)
	if err != nil {
		return nil, nil, nil, err
	}

	chgFile, err := os.Open(cfg.Changes)
	if err != nil {
		return nil, nil, nil, err
	}
	defer chgFile.Close()
	changes, err := feed.ParseChanges(chgFile)
	if err != nil {
		return nil, nil, nil, err
	}

	return graph, msgs, changes, nil
}

// Bootstrap runs one scenario end to end: validate, load the feeds, then
// replay every topology change into the output record stream.
func Bootstrap(cfg state.ScenarioCfg) error {
	if err := state.ScenarioValidator(&cfg); err != nil {
		return err
	}

	log, err := newLogger(cfg.Strategy, cfg.LogPath, cfg.Verbose)
	if err != nil {
		return err
	}

	strat, err := StrategyByName(cfg.Strategy)
	if err != nil {
		return err
	}

	graph, msgs, changes, err := LoadInputs(cfg)
	if err != nil {
		return err
	}

	// the run owns the output stream; start it fresh every time
	out, err := os.Create(cfg.Output)
	if err != nil {
		return err
	}
	defer out.Close()

	r := &Replay{
		Log:      log,
		Graph:    graph,
		Messages: msgs,
		Changes:  changes,
		Strategy: strat,
	}
	if err := r.Run(out); err != nil {
		return err
	}

	log.Info("output written", "path", cfg.Output)
	return nil
}
