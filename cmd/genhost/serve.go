package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"genhost/internal/common/fsutil"
	"genhost/internal/config"
	"genhost/internal/device"
	"genhost/internal/httpapi"
	"genhost/internal/loader"
	"genhost/internal/manager"
	"genhost/internal/registry"
	"genhost/internal/service"
	"genhost/pkg/types"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			log, err := newLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, log)
		},
	}
	f := cmd.Flags()
	f.String("addr", ":8080", "HTTP listen address, e.g. :8080")
	f.String("loader", "worker", "Model loader (worker|llama)")
	f.String("worker-url", "http://127.0.0.1:9000", "Inference worker base URL")
	f.String("accelerator", "auto", "Use the accelerator (auto|true|false)")
	f.String("quantization", "4bit", "Chat model quantization on the accelerator (none|4bit|8bit)")
	f.String("attention", "", "Attention strategy (optimized|default); empty picks by device")
	f.String("default-model", "", "Model to load at startup")
	f.Int("max-queue-depth", 32, "Maximum queued generation requests before returning 429")
	f.Int("max-wait-seconds", 30, "Maximum seconds a request waits for the device")
	f.Int64("max-body-bytes", 64<<20, "Maximum request body size in bytes")
	f.Int("generation-timeout-seconds", 0, "Bound on a generation request (0 disables)")
	f.StringSlice("cors-origins", nil, "Allowed CORS origins; empty disables CORS")
	f.String("lock-file", "", "Exclusive device lock file; empty disables locking")
	return cmd
}

// resolveAccelerator honors a forced accelerator setting and otherwise inspects
// the host.
func resolveAccelerator(cfg config.Config) (bool, error) {
	auto, on, err := cfg.AcceleratorMode()
	if err != nil || !auto {
		return on, err
	}
	return device.DetectAccelerator(), nil
}

// serve wires the components and runs the server until ctx is done.
func serve(ctx context.Context, cfg config.Config, log zerolog.Logger) error {
	if cfg.LockFile != "" {
		path, err := fsutil.ExpandHome(cfg.LockFile)
		if err != nil {
			return err
		}
		unlock, err := device.Lock(path)
		if err != nil {
			return err
		}
		defer func() { _ = unlock() }()
	}

	accel, err := resolveAccelerator(cfg)
	if err != nil {
		return err
	}
	settings, err := cfg.DeviceSettings(accel)
	if err != nil {
		return err
	}

	models, err := registry.Build(cfg.ModelEntries(accel), cfg.ModelsDir)
	if err != nil {
		return fmt.Errorf("build catalog: %w", err)
	}

	ld, alloc := newLoader(cfg, models, &log)
	mgr := manager.NewWithConfig(manager.ManagerConfig{
		Loader:        ld,
		Allocator:     alloc,
		Registry:      models,
		Settings:      settings,
		MaxQueueDepth: cfg.MaxQueueDepth,
		MaxWait:       cfg.MaxWait(),
		Logger:        &log,
	})
	svc := service.New(service.Config{
		Manager: mgr,
		Models: service.Models{
			Base:      cfg.TTSBaseModel,
			Custom:    cfg.TTSCustomModel,
			Design:    cfg.TTSDesignModel,
			Chat:      cfg.ChatModel,
			Image:     cfg.ImageModel,
			ImageEdit: cfg.ImageEditModel,
			Video:     cfg.VideoModel,
			STT:       cfg.STTModel,
		},
		HostMemory: device.HostMemory,
		Logger:     &log,
	})

	httpapi.SetLogger(log)
	httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)
	httpapi.SetGenerationTimeout(cfg.GenerationTimeout())
	httpapi.SetCORSOptions(len(cfg.CORSOrigins) > 0, cfg.CORSOrigins,
		[]string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		[]string{"Content-Type", "X-Request-Id", "X-Log-Level"})
	httpapi.SetBaseContext(ctx)

	if rep := mgr.SanityCheck(); !rep.LoaderAvailable {
		log.Warn().Str("device", rep.Device).Str("error", rep.Error).Msg("loader not available yet")
	}
	if cfg.DefaultModel != "" {
		if _, err := svc.Switch(cfg.DefaultModel); err != nil {
			log.Error().Err(err).Str("model", cfg.DefaultModel).Msg("preload default model")
		}
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpapi.NewMux(svc),
		ReadHeaderTimeout: 10 * time.Second,
	}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().
			Str("addr", cfg.Addr).
			Str("device", string(settings.Device())).
			Str("loader", cfg.Loader).
			Int("models", len(models)).
			Msg("genhost listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.WithoutCancel(gctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			log.Warn().Err(err).Msg("graceful shutdown")
		}
		return nil
	})
	err = g.Wait()
	if cerr := mgr.Close(); cerr != nil {
		log.Warn().Err(cerr).Msg("release on shutdown")
	}
	log.Info().Msg("genhost stopped")
	return err
}

// newLoader picks the loader backend and its matching allocator.
func newLoader(cfg config.Config, models []types.Model, log *zerolog.Logger) (manager.Loader, manager.Allocator) {
	if cfg.Loader == "llama" {
		l := loader.NewLlama(loader.LlamaConfig{
			ContextSize: cfg.LlamaCtx,
			Threads:     cfg.LlamaThreads,
			GPULayers:   cfg.LlamaGPULayers,
			Resolve:     registry.PathResolver(models),
		})
		return l, device.NewAllocator(nil, log)
	}
	w := loader.NewWorker(loader.WorkerConfig{BaseURL: cfg.WorkerURL, Logger: log})
	return w, device.NewAllocator(w, log)
}
