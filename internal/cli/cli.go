package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/podiumd/versionwatch/internal/config"
	"github.com/podiumd/versionwatch/pkg/buildinfo"
	"github.com/podiumd/versionwatch/pkg/cache"
	errs "github.com/podiumd/versionwatch/pkg/errors"
	"github.com/podiumd/versionwatch/pkg/integrations"
	"github.com/podiumd/versionwatch/pkg/manifest"
	"github.com/podiumd/versionwatch/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "versionwatch"
)

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
	Logger   *log.Logger
	v        *viper.Viper
	settings *config.Settings
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		v:      config.NewViper(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "versionwatch tracks upstream versions of PodiumD components",
		Long: `versionwatch scrapes the latest versions of third-party components from
GitHub tag pages, release notes and Docker Hub, and compares the component
versions of PodiumD releases.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetGlobalNormalizationFunc(normalizeFlag)

	flags := root.PersistentFlags()
	flags.BoolP("verbose", "v", false, "enable verbose logging")
	flags.String(config.KeyCatalog, "", "source catalog (TOML); defaults to the built-in catalog")
	flags.String(config.KeyCache, config.CacheNone, "response cache: none, file or redis")
	flags.Duration(config.KeyCacheTTL, config.DefaultCacheTTL, "how long cached responses stay valid")
	flags.String(config.KeyRedisURL, config.DefaultRedisURL, "redis URL for --cache redis")
	flags.Int(config.KeyRetries, 1, "attempts per request (1 = no retry)")
	flags.Duration(config.KeyTimeout, config.DefaultTimeout, "HTTP timeout per request")
	flags.String(config.KeyChartURL, "", "raw-file root of the chart repository")
	c.bindFlags(flags, config.KeyVerbose, config.KeyCatalog, config.KeyCache, config.KeyCacheTTL,
		config.KeyRedisURL, config.KeyRetries, config.KeyTimeout, config.KeyChartURL)

	root.AddCommand(c.latestCommand())
	root.AddCommand(c.compareCommand())
	root.AddCommand(c.componentsCommand())
	root.AddCommand(c.publiccodeCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads settings once per invocation and attaches the logger.
func (c *CLI) setup(cmd *cobra.Command, args []string) error {
	s, err := config.Load(c.v)
	if err != nil {
		return err
	}
	c.settings = s

	if s.Verbose {
		c.SetLogLevel(LogDebug)
		hooks := &logHooks{logger: c.Logger}
		observability.SetExtractHooks(hooks)
		observability.SetCacheHooks(hooks)
		observability.SetHTTPHooks(hooks)
	}
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// bindFlags binds flags to viper keys of the same name.
func (c *CLI) bindFlags(flags *pflag.FlagSet, keys ...string) {
	for _, key := range keys {
		c.bind(flags, key, key)
	}
}

// bind binds the flag called name to a viper key.
func (c *CLI) bind(flags *pflag.FlagSet, key, name string) {
	if f := flags.Lookup(name); f != nil {
		_ = c.v.BindPFlag(key, f)
	}
}

// normalizeFlag accepts underscores in flag names, so --old_version and
// --old-version are the same flag.
func normalizeFlag(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

// =============================================================================
// Collaborator Factories
// =============================================================================

// options builds the transport options from settings. The returned close
// function releases the cache backend.
func (c *CLI) options(ctx context.Context) (integrations.Options, func(), error) {
	backend, err := newCache(ctx, c.settings)
	if err != nil {
		return integrations.Options{}, func() {}, err
	}
	opts := integrations.Options{
		HTTPClient: integrations.NewHTTPClient(c.settings.Timeout),
		Cache:      backend,
		CacheTTL:   c.settings.CacheTTL,
		Attempts:   c.settings.Retries,
	}
	return opts, func() { backend.Close() }, nil
}

// builder creates a manifest builder honoring --chart-url.
func (c *CLI) builder(opts integrations.Options) *manifest.Builder {
	b := manifest.NewBuilder(opts)
	if c.settings.ChartURL != "" {
		b.BaseURL = c.settings.ChartURL
	}
	b.Logger = c.Logger
	return b
}

func (c *CLI) catalog() (*config.Catalog, error) {
	return config.LoadCatalog(c.settings.Catalog)
}

func newCache(ctx context.Context, s *config.Settings) (cache.Cache, error) {
	switch s.Cache {
	case config.CacheFile:
		dir, err := cacheDir()
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "locate file cache directory")
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			return nil, err
		}
		return fc, nil
	case config.CacheRedis:
		return cache.NewRedisCache(ctx, s.RedisURL)
	default:
		return cache.NewNullCache(), nil
	}
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/versionwatch/).
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
