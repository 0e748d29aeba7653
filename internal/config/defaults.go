package config

// DefaultAssets are the doublestar globs, relative to site_dir, copied
// into a rendered site.
var DefaultAssets = []string{
	"assets/**",
	"files/**",
	"img/**",
	"*.pdf",
	"favicon.ico",
	"CNAME",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Source:         ".",
		SiteDir:        ".",
		OutputDir:      "public",
		Assets:         append([]string(nil), DefaultAssets...),
		Port:           8080,
		TimeoutSeconds: 15,
	}
}
