package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults used when neither environment nor site file provide a value.
const (
	defaultAPIBase  = "http://localhost:8000"
	defaultAddrPort = "8080"
)

// Config carries everything the web process needs at startup. Environment
// variables win over the optional site.yaml file, which wins over defaults.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string
	// APIBase is the CMS backend origin, no trailing slash.
	APIBase string
	// WhatsAppNumber is the business contact number used for wa.me handoffs.
	// May be empty; dispatch is then a logged no-op.
	WhatsAppNumber string
	// Dev enables template reparse per request.
	Dev bool

	Site Site
}

// Site holds brand-level settings from site.yaml.
type Site struct {
	BrandName      string `yaml:"brand_name"`
	Tagline        string `yaml:"tagline"`
	CanonicalBase  string `yaml:"canonical_base"`
	WhatsAppNumber string `yaml:"whatsapp_number"`
	TemplatesDir   string `yaml:"templates_dir"`
	PublicDir      string `yaml:"public_dir"`
}

// Load resolves configuration from the environment plus an optional site file.
// A missing site file is not an error; a malformed one is.
func Load(siteFile string) (Config, error) {
	cfg := Config{
		APIBase: defaultAPIBase,
		Site: Site{
			BrandName:    "Aurelia Studios",
			Tagline:      "Weddings, portraits and events, told in light.",
			TemplatesDir: "templates",
			PublicDir:    "public",
		},
	}

	if siteFile != "" {
		raw, err := os.ReadFile(siteFile)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(raw, &cfg.Site); err != nil {
				return Config{}, fmt.Errorf("config: parse %s: %w", siteFile, err)
			}
		case os.IsNotExist(err):
			// optional
		default:
			return Config{}, fmt.Errorf("config: read %s: %w", siteFile, err)
		}
	}

	// Port resolution: prefer AURELIA_WEB_PORT, then PORT, else default.
	port := os.Getenv("AURELIA_WEB_PORT")
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = defaultAddrPort
	}
	cfg.Addr = ":" + port

	if v := strings.TrimSpace(os.Getenv("AURELIA_WEB_API_BASE")); v != "" {
		cfg.APIBase = v
	}
	cfg.APIBase = strings.TrimRight(cfg.APIBase, "/")

	cfg.WhatsAppNumber = cfg.Site.WhatsAppNumber
	if v := strings.TrimSpace(os.Getenv("AURELIA_WEB_WHATSAPP_NUMBER")); v != "" {
		cfg.WhatsAppNumber = v
	}

	cfg.Dev = os.Getenv("AURELIA_WEB_DEV") != "" || os.Getenv("DEV") != ""
	return cfg, nil
}
