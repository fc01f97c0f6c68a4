package projectpdf

import (
	"log/slog"
	"time"

	"github.com/porticus-lab/go-project-pdf/internal/filter"
	"github.com/porticus-lab/go-project-pdf/internal/layout"
)

// config holds internal configuration shared by a Generator and the
// Converter it starts.
type config struct {
	chromePath   string
	timeout      time.Duration
	noSandbox    bool
	autoDownload bool
	headless     string
	logger       *slog.Logger
	now          func() time.Time
	page         PageConfig
	theme        layout.Theme
	filter       *filter.Config
}

func defaultConfig() config {
	return config{
		timeout:  5 * time.Minute,
		headless: "new",
		logger:   slog.Default(),
		now:      time.Now,
		page:     DefaultPageConfig(),
		theme:    layout.DefaultTheme(),
		filter:   filter.Default(),
	}
}

func newConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// Option configures a [Generator] or [Converter].
type Option func(*config)

// WithChromePath sets the path to the Chrome or Chromium executable.
// By default standard locations are searched.
func WithChromePath(path string) Option {
	return func(c *config) {
		c.chromePath = path
	}
}

// WithTimeout sets the maximum duration for a single PDF conversion.
// Defaults to 5 minutes. A zero or negative value disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithNoSandbox disables the Chrome sandbox. This is required when
// running as root, for example inside Docker containers.
func WithNoSandbox() Option {
	return func(c *config) {
		c.noSandbox = true
	}
}

// WithAutoDownload fetches a managed Chromium build when no executable
// was given with [WithChromePath]. The download is cached between runs.
func WithAutoDownload() Option {
	return func(c *config) {
		c.autoDownload = true
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithClock overrides the source of the generation timestamp printed on
// the cover and summary pages.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.now = now
		}
	}
}

// WithPageConfig sets the paper size and margins.
func WithPageConfig(p PageConfig) Option {
	return func(c *config) {
		c.page = p
	}
}

// WithTheme replaces the paragraph and table styles.
func WithTheme(t layout.Theme) Option {
	return func(c *config) {
		c.theme = t
	}
}
