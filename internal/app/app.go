package app

import (
	"context"
	"fmt"
	"io"

	"coolant/internal/config"
	"coolant/internal/hvac"
	"coolant/internal/logging"
	"coolant/internal/notify"
	"coolant/internal/prefs"
	"coolant/internal/state"
	"coolant/internal/ui"
)

// Options configure the coolant application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/coolant/prefs.toml
	APIBaseURL string // overrides config and environment when non-empty
}

// Run boots the coolant TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.APIBaseURL != "" {
		cfg.APIBaseURL = opts.APIBaseURL
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	log, closer, err := logging.Open(cfg.LogFilePath())
	if err != nil {
		// A broken log dir should never keep the console from starting.
		log = logging.Discard()
		closer = io.NopCloser(nil)
	}
	defer func() { _ = closer.Close() }()

	client, err := hvac.NewClient(cfg.APIBaseURL)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	store := &state.Store{}
	center := notify.NewCenter(notify.DefaultTTL)
	loader := NewLoader(store, client, center, log)
	mutator := NewMutator(client, loader, center, log)

	log.Info("coolant starting", "api", cfg.APIBaseURL)

	uiOpts := ui.Options{
		Context:   ctx,
		Store:     store,
		Loader:    loader,
		Mutator:   mutator,
		Notify:    center,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
