package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gabrielcapilla/radiogo/internal/logger"
	"github.com/gabrielcapilla/radiogo/internal/playback"
	"github.com/gabrielcapilla/radiogo/internal/ports"
	"github.com/gabrielcapilla/radiogo/internal/server"
	"github.com/gabrielcapilla/radiogo/internal/services/catalog"
	"github.com/gabrielcapilla/radiogo/internal/services/config"
	"github.com/gabrielcapilla/radiogo/internal/services/notify"
	"github.com/gabrielcapilla/radiogo/internal/services/player"
	"github.com/gabrielcapilla/radiogo/internal/services/storage"
	"github.com/gabrielcapilla/radiogo/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	configDir := flag.String("config", config.DefaultDir(), "directory holding config.yml, history and logs")
	headless := flag.Bool("headless", false, "run without the terminal UI (requires http.listen)")
	flag.Parse()

	if err := run(*configDir, *headless); err != nil {
		fmt.Fprintf(os.Stderr, "radiogo: %v\n", err)
		os.Exit(1)
	}
}

func run(configDir string, headless bool) error {
	cfg, err := config.NewViperConfigService(configDir).Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if headless {
		if cfg.HTTP.Listen == "" {
			return errors.New("headless mode needs http.listen in config.yml")
		}
		logger.InitConsole(cfg.Log.Level)
	} else {
		logFile, err := logger.Init(configDir, cfg.Log.Level)
		if err != nil {
			return err
		}
		defer logFile.Close()
	}

	stations, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	logger.Log.Info().Int("stations", stations.Len()).Msg("Catalog loaded")

	var store ports.StorageService
	if configDir != "" {
		store, err = storage.NewBboltStore(filepath.Join(configDir, "radiogo.db"), cfg.HistoryLimit)
		if err != nil {
			// History is optional; playback works without it.
			logger.Log.Error().Err(err).Msg("History disabled")
			store = nil
		} else {
			defer store.Close()
		}
	}

	engine := player.NewMpvPlayer(cfg.MpvSocketPath)
	defer engine.Close()

	notifiers := notify.Fanout{notify.NewLogNotifier()}
	var bridge *ui.Bridge
	if !headless {
		bridge = ui.NewBridge()
		defer bridge.Close()
		notifiers = append(notifiers, bridge)
	}

	ctrl := playback.NewController(stations, engine, notifiers, playback.Options{
		Volume:               &cfg.Playback.DefaultVolume,
		NotificationDuration: cfg.Notifications.Duration(),
	})
	if cfg.Playback.CueFirstStation {
		if all := stations.Stations(); len(all) > 0 {
			if err := ctrl.Cue(all[0].ID); err != nil {
				logger.Log.Warn().Err(err).Msg("Could not cue first station")
			}
		}
	}

	loop := playback.NewLoop(ctrl)
	if store != nil {
		recorder := playback.NewHistoryRecorder(store)
		defer recorder.Close()
		loop.OnChange(recorder.Observe)
	}
	if bridge != nil {
		loop.OnChange(bridge.Observe)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Log.Error().Err(err).Msg("Playback loop stopped")
		}
	}()
	defer func() {
		stop()
		if bridge != nil {
			bridge.Close()
		}
		<-loopDone
	}()

	serverDone := make(chan error, 1)
	if cfg.HTTP.Listen != "" {
		router := server.SetupRouter(server.NewAPI(loop, stations))
		go func() { serverDone <- server.Serve(ctx, cfg.HTTP.Listen, router) }()
	}

	if headless {
		select {
		case <-ctx.Done():
		case err := <-serverDone:
			if err != nil {
				return fmt.Errorf("http server: %w", err)
			}
		case <-loopDone:
		}
		logger.Log.Info().Msg("Shutting down")
		return nil
	}

	model := ui.InitialModel(loop, stations, bridge, store, cfg.HistoryLimit)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}
