package internal

import (
	"fmt"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/lowerpower/www.mycal.net/internal/models"
)

// Config represents the application configuration.
type Config struct {
	App    ApplicationConfig `yaml:"app"`
	Data   DataConfig        `yaml:"data"`
	Output OutputConfig      `yaml:"output"`
	Site   models.Site       `yaml:"site"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Data.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return validateSite(&c.Site)
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	HTTP     HTTPConfig `yaml:"http"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return c.HTTP.Validate()
}

// HTTPConfig holds the preview server configuration.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns the preview server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// DataConfig holds the path to the term data directory.
type DataConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the data configuration.
func (c *DataConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// OutputConfig holds the path the generated site is written to.
type OutputConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the output configuration.
func (c *OutputConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// validateSite validates the site section.
func validateSite(s *models.Site) error {
	if err := validation.ValidateStruct(s,
		validation.Field(&s.BaseURL, validation.Required),
		validation.Field(&s.HomeURL, validation.Required),
		validation.Field(&s.Title, validation.Required),
		validation.Field(&s.Language, validation.Required),
	); err != nil {
		return err
	}
	if !strings.HasSuffix(s.BaseURL, "/") {
		return fmt.Errorf("site: base_url must end with a trailing slash: %q", s.BaseURL)
	}
	if err := validation.ValidateStruct(&s.Person,
		validation.Field(&s.Person.ID, validation.Required),
		validation.Field(&s.Person.Name, validation.Required),
	); err != nil {
		return fmt.Errorf("site.person: %w", err)
	}
	if err := validation.ValidateStruct(&s.Publisher,
		validation.Field(&s.Publisher.ID, validation.Required),
		validation.Field(&s.Publisher.Name, validation.Required),
	); err != nil {
		return fmt.Errorf("site.publisher: %w", err)
	}
	if err := validation.ValidateStruct(&s.Website,
		validation.Field(&s.Website.ID, validation.Required),
		validation.Field(&s.Website.Name, validation.Required),
	); err != nil {
		return fmt.Errorf("site.website: %w", err)
	}
	return nil
}

// NewDefaultConfig returns a new Config with the site defaults.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			HTTP: HTTPConfig{
				Port: 8080,
			},
		},
		Data: DataConfig{
			Path: "./data",
		},
		Output: OutputConfig{
			Path: "./public",
		},
		Site: models.Site{
			BaseURL:     "https://www.mycal.net/terms/",
			HomeURL:     "https://www.mycal.net/",
			Title:       "Mycal Terms",
			Subtitle:    "A Lexicon of Original Concepts",
			Description: "Original terms and conceptual frameworks coined by Mike Johnson (Mycal), spanning cronofuturist philosophy, AI infrastructure, the Substrate War, and temporal methodology.",
			Intro: "terms and frameworks that emerged from decades of building, writing, and exploring " +
				"at the intersection of infrastructure, philosophy, and culture. Each links back " +
				"to the work where it first appeared.",
			Language: "en-US",
			License:  "https://creativecommons.org/licenses/by-sa/4.0/",
			Person: models.Person{
				ID:             "https://blog.mycal.net/about/#mycal",
				Name:           "Mike Johnson",
				GivenName:      "Michael",
				FamilyName:     "Johnson",
				AlternateNames: []string{"Mycal", "Mike", "マイカル", "mycal"},
				URL:            "https://www.mycal.net/",
				UUID:           "urn:uuid:4ff7ed97-b78f-4ae6-9011-5af714ee241c",
				SameAs: []string{
					"https://www.mycal.net",
					"https://music.mycal.net",
					"https://blog.mycal.net",
					"https://archive.mycal.net",
					"https://github.com/lowerpower",
					"https://www.linkedin.com/in/mycal/",
					"https://x.com/mycal_1",
				},
			},
			Publisher: models.Publisher{
				ID:   "https://blog.mycal.net/#publisher",
				Name: "Mycal Labs",
				URL:  "https://blog.mycal.net/",
				UUID: "urn:uuid:bbf7372e-87d3-4098-8e60-f4e24d027a04",
			},
			Website: models.Website{
				ID:   "https://www.mycal.net/#website",
				Name: "Mycal.net",
				URL:  "https://www.mycal.net/",
			},
			Page: models.Page{
				ID:           "https://www.mycal.net/terms/#webpage",
				DateCreated:  "2026-02-22T00:00:00-08:00",
				DateModified: "2026-02-22T00:00:00-08:00",
			},
			TermSet: models.TermSet{
				ID:   "https://www.mycal.net/terms/#termset",
				Name: "Mycal Terms",
			},
			AnchorResolver: "https://anchorid.net/resolve/",
			NoWorkRoots: []string{
				"https://blog.mycal.net/",
				"https://nobgp.com/",
				"https://anchorid.net/",
				"https://music.mycal.net/",
			},
			ArchiveHost:   "archive.mycal.net",
			SeriesSegment: "tag/",
			Analytics: models.Analytics{
				ScriptURL: "https://analytics.mycal.net/script.js",
				WebsiteID: "cd13ff4f-ac2e-4f4e-ad21-2ae1a2f83595",
			},
		},
	}
}
