package internal

import (
	"log/slog"
	"path/filepath"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/notepress/internal/embed"
	"github.com/starford/notepress/internal/importer"
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// EnvProduction is the APP_ENV value that selects the production site base.
const EnvProduction = "production"

var urlRe = regexp.MustCompile(`^https?://[^\s/]+`)

// Config represents the application configuration.
type Config struct {
	App    ApplicationConfig `yaml:"app"`
	Output OutputConfig      `yaml:"output"`
	Vault  VaultConfig       `yaml:"vault"`
	Site   SiteConfig        `yaml:"site"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	if err := c.Vault.Validate(); err != nil {
		return err
	}
	return c.Site.Validate()
}

// Layout returns the importer layout described by the configuration.
func (c *Config) Layout() importer.Layout {
	return importer.Layout{
		PostsDir:   c.Output.PostsDir,
		ImagesDir:  c.Output.ImagesDir,
		ImageURL:   c.Output.ImageURL,
		SearchDirs: c.Vault.SearchDirs,
	}
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel  slog.Level `yaml:"log_level"`
	LogFormat string     `yaml:"log_format"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.LogFormat, validation.Required, validation.In(LogFormatText, LogFormatJSON)),
	)
}

// OutputConfig places converted posts and images inside the project root.
type OutputConfig struct {
	ProjectDir string `yaml:"project_dir"`
	PostsDir   string `yaml:"posts_dir"`
	ImagesDir  string `yaml:"images_dir"`
	ImageURL   string `yaml:"image_url"`
}

// Validate validates the output configuration.
func (c *OutputConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.ProjectDir, validation.Required),
		validation.Field(&c.PostsDir, validation.Required, validation.By(relativePath)),
		validation.Field(&c.ImagesDir, validation.Required, validation.By(relativePath)),
		validation.Field(&c.ImageURL, validation.Required, validation.Match(regexp.MustCompile(`^/`))),
	)
}

// VaultConfig lists the vault folders searched for embedded images.
type VaultConfig struct {
	SearchDirs []string `yaml:"search_dirs"`
}

// Validate validates the vault configuration.
func (c *VaultConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.SearchDirs, validation.Each(validation.Required, validation.By(relativePath))),
	)
}

// SiteConfig mirrors the static site settings the posts are published with.
type SiteConfig struct {
	URL            string `yaml:"url"`
	Base           string `yaml:"base"`
	ProductionBase string `yaml:"production_base"`
	HighlightTheme string `yaml:"highlight_theme"`
	Wrap           bool   `yaml:"wrap"`
}

// Validate validates the site configuration.
func (c *SiteConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.URL, validation.Match(urlRe)),
		validation.Field(&c.Base, validation.Required),
		validation.Field(&c.ProductionBase, validation.Required),
		validation.Field(&c.HighlightTheme, validation.Required),
	)
}

// BaseFor returns the base path for the given APP_ENV value.
func (c *SiteConfig) BaseFor(env string) string {
	if env == EnvProduction {
		return c.ProductionBase
	}
	return c.Base
}

func relativePath(value interface{}) error {
	s, _ := value.(string)
	if filepath.IsAbs(s) {
		return validation.NewError("validation_relative_path", "must be a relative path")
	}
	return nil
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	layout := importer.DefaultLayout()
	return &Config{
		App: ApplicationConfig{
			LogLevel:  slog.LevelInfo,
			LogFormat: LogFormatText,
		},
		Output: OutputConfig{
			ProjectDir: ".",
			PostsDir:   layout.PostsDir,
			ImagesDir:  layout.ImagesDir,
			ImageURL:   embed.DefaultPrefix,
		},
		Vault: VaultConfig{
			SearchDirs: append([]string(nil), importer.DefaultSearchDirs...),
		},
		Site: SiteConfig{
			URL:            "https://heyjoo.github.io",
			Base:           "/",
			ProductionBase: "/joo-log",
			HighlightTheme: "github-dark",
			Wrap:           true,
		},
	}
}
