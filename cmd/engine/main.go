package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"enrich-engine/internal/config"
	"enrich-engine/internal/enrich"
	"enrich-engine/internal/events"
	"enrich-engine/internal/httpapi"
	"enrich-engine/internal/lusha"
	"enrich-engine/internal/secrets"
)

func main() {
	_ = godotenv.Load()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := run(log); err != nil {
		log.Fatal("engine exited", zap.Error(err))
	}
}

func run(log *zap.Logger) error {
	// Engine data dir: use env if provided, else local folder.
	dataDir := os.Getenv("ENRICH_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		return err
	}

	// Load config and keep it reloadable
	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		cfg, err := config.Load(userCfgPath)
		if err != nil {
			return cfg, err
		}
		config.OverlayEnv(&cfg)
		return cfg, nil
	}
	cfg, err := loadCfg()
	if err != nil {
		return err
	}
	cfgVal.Store(cfg)

	hub := events.NewHub()

	client := lusha.New(lusha.Config{
		BaseURL:           cfg.API.BaseURL,
		Timeout:           time.Duration(cfg.API.TimeoutSeconds) * time.Second,
		RequestsPerSecond: cfg.API.RequestsPerSecond,
		Burst:             cfg.API.Burst,
	}, log)
	svc := enrich.NewService(client, log)

	mux := httpapi.NewMux(httpapi.Deps{
		Log:         log,
		Hub:         hub,
		Enricher:    svc,
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
		LoadCfg:     loadCfg,
		GetAPIKey:   secrets.GetAPIKey,
		SetAPIKey:   secrets.SetAPIKey,
	})

	handler := httpapi.Chain(mux,
		httpapi.Cors,
		httpapi.RequestID,
		httpapi.Recover(log),
		httpapi.AccessLog(log),
	)

	// Localhost only; the extension talks to us, nobody else should.
	addr := net.JoinHostPort("127.0.0.1", strconv.Itoa(cfg.App.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	log.Info("engine listening", zap.String("addr", "http://"+addr), zap.String("config", userCfgPath))

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutCtx)
	})
	return g.Wait()
}
