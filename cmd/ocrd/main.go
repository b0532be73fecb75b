package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"ocrd/internal/catalog"
	"ocrd/internal/common/fsutil"
	"ocrd/internal/config"
	"ocrd/internal/httpapi"
	"ocrd/internal/service"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd wires flags over env and config-file settings. Precedence:
// flags > config file > environment > defaults.
func newRootCmd() *cobra.Command {
	var configPath string
	var flags config.Config
	root := &cobra.Command{
		Use:           "ocrd",
		Short:         "OCR HTTP service over a directory of Tesseract models",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromEnv()
			if configPath != "" {
				fileCfg, err := config.Load(configPath)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				cfg = cfg.Merge(fileCfg)
			}
			cfg = cfg.Merge(flags).ApplyDefaults()
			return run(cfg)
		},
	}
	f := root.Flags()
	f.StringVar(&configPath, "config", "", "Path to a yaml/json/toml config file")
	f.StringVar(&flags.Addr, "addr", "", "HTTP listen address, e.g. :8080")
	f.StringVar(&flags.DataDir, "data-dir", "", "Directory to scan for *.traineddata model files")
	f.StringVar(&flags.DefaultLanguage, "default-language", "", "Language used when a request omits one")
	f.StringVar(&flags.LogLevel, "log-level", "", "Log level: debug|info|warn|error")
	f.Int64Var(&flags.MaxUploadBytes, "max-upload-bytes", 0, "Maximum accepted upload size in bytes")
	f.IntVar(&flags.RequestTimeoutSeconds, "request-timeout", 0, "Per-request timeout in seconds")
	f.Int64Var(&flags.MaxConcurrentOCR, "max-concurrent-ocr", 0, "Cap on simultaneous recognitions (0=unlimited)")
	f.Float64Var(&flags.RateLimitRPS, "rate-limit-rps", 0, "Per-IP request rate limit (0=disabled)")
	return root
}

func run(cfg config.Config) error {
	logger := newLogger(cfg.LogLevel)

	dataDir, err := fsutil.ExpandHome(cfg.DataDir)
	if err != nil {
		return err
	}
	dataDir, err = filepath.Abs(dataDir)
	if err != nil {
		return fmt.Errorf("abs path: %w", err)
	}

	// The catalog is built exactly once, before traffic. An unreadable root
	// makes the whole service meaningless, so it aborts startup.
	cat, err := catalog.Build(dataDir)
	if err != nil {
		return fmt.Errorf("build catalog: %w", err)
	}
	logger.Info().Int("models", cat.Len()).Str("data_dir", dataDir).Msg("catalog built")

	svc := service.New(cat, service.Config{
		DataPath:         dataDir,
		DefaultLanguage:  cfg.DefaultLanguage,
		MaxConcurrentOCR: cfg.MaxConcurrentOCR,
		Logger:           logger,
	})

	httpapi.SetLogger(logger)
	httpapi.SetMaxBodyBytes(cfg.MaxUploadBytes)
	httpapi.SetRequestTimeout(time.Duration(cfg.RequestTimeoutSeconds) * time.Second)
	httpapi.SetCORSOptions(cfg.CORSEnabled, cfg.CORSOrigins, cfg.CORSMethods, cfg.CORSHeaders, cfg.CORSMaxAgeSeconds)
	httpapi.SetRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst)

	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()
	httpapi.SetBaseContext(baseCtx)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpapi.NewMux(svc),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Addr).Msg("ocrd listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-stop:
	}
	cancelBase()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown error")
	}
	return nil
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Str("service", "ocrd").Logger()
}
