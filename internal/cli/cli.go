package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/matzehuels/stackbadge/internal/config"
	"github.com/matzehuels/stackbadge/pkg/badge"
	"github.com/matzehuels/stackbadge/pkg/buildinfo"
	"github.com/matzehuels/stackbadge/pkg/cache"
	"github.com/matzehuels/stackbadge/pkg/fonts"
	"github.com/matzehuels/stackbadge/pkg/fonts/builtin"
	"github.com/matzehuels/stackbadge/pkg/icons"
	"github.com/matzehuels/stackbadge/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "stackbadge"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	// Out receives command output; status lines and badges alike.
	Out io.Writer

	viper      *viper.Viper
	configFile string
	cfg        *config.Config
}

// New creates a new CLI instance with a default logger writing to w.
// Command output goes to stdout.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
		viper:  viper.New(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Stackbadge renders status badges as SVG",
		Long:         `Stackbadge renders shields-style status badges ("build: passing") as standalone SVG documents, one at a time or in batches from a manifest.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, c.Logger))
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Out)

	flags := root.PersistentFlags()
	flags.StringVar(&c.configFile, "config", "", "config file (default ./stackbadge.{toml,yaml})")
	flags.String("fonts-dir", "", "directory of *.json width tables overriding the built-in fonts")
	_ = c.viper.BindPFlag("fonts.dir", flags.Lookup("fonts-dir"))

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.batchCommand())
	root.AddCommand(c.galleryCommand())
	root.AddCommand(c.measureCommand())
	root.AddCommand(c.colorCommand())
	root.AddCommand(c.fontsCommand())
	root.AddCommand(c.iconsCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig resolves the layered configuration and installs the logging
// hooks. It runs once per command invocation.
func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.viper, c.configFile)
	if err != nil {
		return err
	}
	c.cfg = cfg
	if file := config.File(c.viper); file != "" {
		c.Logger.Debug("loaded config", "file", file)
	}

	hooks := &logHooks{logger: c.Logger}
	observability.SetRenderHooks(hooks)
	observability.SetCacheHooks(hooks)
	observability.SetBatchHooks(hooks)
	return nil
}

// config returns the loaded configuration, or the defaults when a command
// runs without the root pre-run (as in tests).
func (c *CLI) config() *config.Config {
	if c.cfg == nil {
		c.cfg = config.Default()
	}
	return c.cfg
}

// =============================================================================
// Factories
// =============================================================================

// registry returns the font registry, with fonts.dir layered over the
// built-in tables.
func (c *CLI) registry() (*fonts.Registry, error) {
	dir := c.config().Fonts.Dir
	if dir == "" {
		return builtin.Registry()
	}
	c.Logger.Debug("loading font tables", "dir", dir)
	return builtin.NewRegistry(os.DirFS(dir))
}

// newRenderer creates a renderer over the configured fonts and the
// built-in icons.
func (c *CLI) newRenderer() (*badge.Renderer, error) {
	reg, err := c.registry()
	if err != nil {
		return nil, err
	}
	catalog, err := icons.Builtin()
	if err != nil {
		return nil, err
	}
	opts := []badge.Option{badge.WithIcons(catalog)}
	if c.config().Render.StrictColors {
		opts = append(opts, badge.WithStrictColors())
	}
	return badge.NewRenderer(reg, opts...)
}

// newCache returns the configured render cache. Entries are scoped by the
// version and font directory, since both change the output.
func (c *CLI) newCache(noCache bool) (cache.Cache, cache.Keyer, error) {
	cfg := c.config()
	keyer := cache.NewScopedKeyer(nil, cache.Scope(buildinfo.Version, cfg.Fonts.Dir))
	if noCache || !cfg.Cache.Enabled {
		return cache.NewNullCache(), keyer, nil
	}

	dir := cfg.Cache.Dir
	if dir == "" {
		var err error
		if dir, err = cacheDir(); err != nil {
			c.Logger.Warn("no cache directory, caching in memory", "error", err)
			return cache.NewMemoryCache(), keyer, nil
		}
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, nil, err
	}
	return fc, keyer, nil
}

// resolvedCacheDir returns cache.dir or the default directory.
func (c *CLI) resolvedCacheDir() (string, error) {
	if dir := c.config().Cache.Dir; dir != "" {
		return dir, nil
	}
	return cacheDir()
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the default persistent cache directory using the XDG
// convention (~/.cache/stackbadge/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
