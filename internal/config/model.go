// internal/config/model.go
//
// Typed configuration model for pagepath.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from three overlay layers:
//
//   • optional `.env`                            – dotenv values,
//   • `conf/global.yaml`                         – primary static file,
//   • `PAGEPATH_`-prefixed environment overrides – highest precedence.
//
// Any string value that begins with `vault:` is resolved through the Vault
// client after unmarshalling (see secrets.go), so the rest of the program
// only ever sees plain strings.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`.
//   • The `Paths` block is filled at runtime; YAML must not try to set it.
//   • An empty `database.dsn` runs the service without the page-set store.
//   • Oxford commas, two spaces after periods.  No em-dash.

package config

import "time"

//
// HTTP section
//

// HTTP holds web-server tunables.
type HTTP struct {
	ListenAddr string `koanf:"listen_addr" validate:"required,hostname_port"`
	ForceHTTPS bool   `koanf:"force_https"`
	// MaxBodyBytes caps request bodies on the resolver API.
	MaxBodyBytes int64 `koanf:"max_body_bytes" validate:"gte=0"`
}

//
// Database section
//

// Database holds the page-set store DSN.
//
// The *template* (`DSN`) may carry one %s verb where the password goes.
// The *secret* (`Password`) normally arrives as a `vault:` reference and is
// injected at runtime, keeping credentials out of flat files.
type Database struct {
	DSN      string `koanf:"dsn"`
	Password string `koanf:"password"`
	MaxOpen  int    `koanf:"max_open" validate:"gte=0"`
	MaxIdle  int    `koanf:"max_idle" validate:"gte=0"`
}

//
// Page-set cache section
//

// PageSet tunes the in-memory page-set cache.
type PageSet struct {
	CacheTTL      time.Duration `koanf:"cache_ttl"      validate:"gte=0"`
	MaxEntries    int           `koanf:"max_entries"    validate:"gte=0"`
	EvictInterval time.Duration `koanf:"evict_interval" validate:"gte=0"`
}

//
// View section
//

// View selects the theme used by POST /v1/page.
type View struct {
	ThemeDir      string `koanf:"theme_dir"`
	Theme         string `koanf:"theme"`
	TemplateCache int    `koanf:"template_cache" validate:"gte=0"`
}

//
// Log section
//

// Log sets the minimum level of the file and console sinks.
type Log struct {
	Level string `koanf:"level" validate:"omitempty,oneof=debug info warn error"`
}

//
// Paths section (runtime only)
//

// Paths is resolved at runtime.  The loader discovers `Root` (repo root or
// PAGEPATH_ROOT override) so later code can build absolute file paths.
type Paths struct {
	Root string
}

//
// Root aggregate
//

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads throughout the app lifetime.
type Config struct {
	HTTP     HTTP     `koanf:"http"`
	Database Database `koanf:"database"`
	PageSet  PageSet  `koanf:"pageset"`
	View     View     `koanf:"view"`
	Log      Log      `koanf:"log"`
	Paths    Paths    `koanf:"-"`
}

// Defaults fills zero values that have a sensible fallback.
func (c *Config) Defaults() {
	if c.HTTP.ListenAddr == "" {
		c.HTTP.ListenAddr = ":8080"
	}
	if c.HTTP.MaxBodyBytes == 0 {
		c.HTTP.MaxBodyBytes = 1 << 20
	}
	if c.Database.MaxOpen == 0 {
		c.Database.MaxOpen = 15
	}
	if c.Database.MaxIdle == 0 {
		c.Database.MaxIdle = 5
	}
	if c.PageSet.CacheTTL == 0 {
		c.PageSet.CacheTTL = 5 * time.Minute
	}
	if c.PageSet.MaxEntries == 0 {
		c.PageSet.MaxEntries = 1000
	}
	if c.PageSet.EvictInterval == 0 {
		c.PageSet.EvictInterval = time.Minute
	}
	if c.View.Theme == "" {
		c.View.Theme = "default"
	}
	if c.View.TemplateCache == 0 {
		c.View.TemplateCache = 16
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}
