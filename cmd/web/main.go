// cmd/web/main.go
//
// pagepath – HTTP entry point.
//
// Boot sequence
// -------------
//
//  1. Load configuration (conf/.env → conf/global.yaml → PAGEPATH_ env).
//
//  2. Start daily rotating logger (tees to console when running in a TTY).
//
//  3. Resolve `vault:` references when the page-set store needs them.
//
//  4. Open the page-set store and build the lazy page-set cache (optional;
//     an empty database.dsn skips both).
//
//  5. Build the view engine (theme directory override, embedded default).
//
//  6. Mount the chi router (resolver API, /page, /healthz, /metrics) behind
//     server.New timeouts and serve until SIGINT or SIGTERM.
//
// Large comment blocks are framed by blank “//” lines; inline comments use
// a single “//”.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/yanizio/pagepath/internal/config"
	"github.com/yanizio/pagepath/internal/database"
	"github.com/yanizio/pagepath/internal/logger"
	"github.com/yanizio/pagepath/internal/pageset"
	"github.com/yanizio/pagepath/internal/server"
	"github.com/yanizio/pagepath/internal/theme"
	"github.com/yanizio/pagepath/internal/vault"
	"github.com/yanizio/pagepath/internal/view"
)

const shutdownGrace = 10 * time.Second

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logOut, err := logger.New(cfg.Paths.Root, runningInTTY(), cfg.Log.Level)
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}
	defer func() { _ = logOut.Sync() }()

	//
	// ── 1.  Page-set store (optional) ───────────────────────────────────
	//
	var deps server.Deps
	if cfg.Database.DSN != "" {
		if cfg.NeedsSecrets() {
			vc, err := vault.New(ctx)
			if err != nil {
				logOut.Fatalw("vault client", "err", err)
			}
			if err := config.ResolveSecrets(ctx, cfg, vc); err != nil {
				logOut.Fatalw("resolve secrets", "err", err)
			}
		}

		logOut.Info("connecting to page-set store …")
		db, err := database.OpenWithOptions(ctx, cfg.DatabaseDSN(), cfg.Database.MaxOpen, cfg.Database.MaxIdle)
		if err != nil {
			logOut.Fatalw("connect page-set store", "err", err)
		}
		defer db.Close()

		// Log the page-set count as an early sanity check.
		if count, err := pageset.Count(ctx, db); err != nil {
			logOut.Warnw("page-set store online, count failed", "err", err)
		} else {
			logOut.Infow("page-set store online", "page_sets", count)
		}

		cache := pageset.New(db, pageset.Options{
			TTL:           cfg.PageSet.CacheTTL,
			MaxEntries:    cfg.PageSet.MaxEntries,
			EvictInterval: cfg.PageSet.EvictInterval,
		})
		defer cache.Close()
		deps.PageSets = cache
	} else {
		logOut.Info("database.dsn empty, page-set store disabled")
	}

	//
	// ── 2.  View engine ─────────────────────────────────────────────────
	//
	themeDir := cfg.View.ThemeDir
	if themeDir != "" && !filepath.IsAbs(themeDir) {
		themeDir = filepath.Join(cfg.Paths.Root, themeDir)
	}
	deps.Views = view.NewEngine(&theme.Manager{BaseDir: themeDir}, cfg.View.Theme,
		cfg.View.TemplateCache, view.CacheDefault)
	deps.MaxBodyBytes = cfg.HTTP.MaxBodyBytes
	deps.ForceHTTPS = cfg.HTTP.ForceHTTPS

	//
	// ── 3.  HTTP server ─────────────────────────────────────────────────
	//
	srv := server.New(cfg.HTTP.ListenAddr, server.NewRouter(deps))
	go func() {
		logOut.Infow("listening", "addr", cfg.HTTP.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logOut.Fatalw("http server", "err", err)
		}
	}()

	<-ctx.Done()
	logOut.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		logOut.Errorw("graceful shutdown", "err", err)
	}
}
