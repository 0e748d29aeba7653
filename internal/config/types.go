package config

// DefaultConfigFile is the configuration file looked up in the working
// directory.
const DefaultConfigFile = "scholarsite.yml"

// EnvPrefix prefixes environment overrides: SCHOLARSITE_PORT -> port.
const EnvPrefix = "SCHOLARSITE_"

// Config is the top-level scholarsite configuration, corresponding to
// scholarsite.yml.
type Config struct {
	// Source is where data/*.json is read from: a local directory or an
	// http(s) base URL.
	Source string `yaml:"source" koanf:"source"`
	// SiteDir holds the author's static files (PDFs, images).
	SiteDir string `yaml:"site_dir" koanf:"site_dir"`
	// Shell is an optional HTML page to fill instead of the built-in one.
	Shell           string   `yaml:"shell,omitempty" koanf:"shell"`
	OutputDir       string   `yaml:"output_dir" koanf:"output_dir"`
	Assets          []string `yaml:"assets" koanf:"assets"`
	Port            int      `yaml:"port" koanf:"port"`
	TimeoutSeconds  int      `yaml:"timeout_seconds" koanf:"timeout_seconds"`
	AllowAllOrigins bool     `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}
