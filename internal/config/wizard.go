package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/manifoldco/promptui"
)

// siteMarkers are files whose presence means the directory already holds
// site data.
var siteMarkers = []string{
	"data/site.json",
	"data/publications.json",
	"data/presentations.json",
}

// detectSiteData reports which data documents already exist under dir.
func detectSiteData(dir string) []string {
	var found []string
	for _, marker := range siteMarkers {
		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(marker))); err == nil {
			found = append(found, marker)
		}
	}
	return found
}

func validatePort(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return errors.New("port must be a number")
	}
	if n < 0 || n > 65535 {
		return errors.New("port out of range")
	}
	return nil
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to scholarsite! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	if found := detectSiteData("."); len(found) > 0 {
		fmt.Printf("Found site data: %v\n\n", found)
	}

	// 1. Data source.
	sourcePrompt := promptui.Select{
		Label: "Where does the site data live?",
		Items: []string{
			"local  - data/*.json in a directory",
			"remote - an already published site (http/https)",
		},
	}
	sourceIdx, _, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("source selection: %w", err)
	}

	if sourceIdx == 0 {
		dirPrompt := promptui.Prompt{Label: "Site directory", Default: "."}
		dir, err := dirPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("site directory: %w", err)
		}
		cfg.Source, cfg.SiteDir = dir, dir
		if len(detectSiteData(dir)) == 0 {
			fmt.Printf("\nNote: no data/*.json found in %s yet.\n\n", dir)
		}
	} else {
		urlPrompt := promptui.Prompt{
			Label: "Base URL",
			Validate: func(s string) error {
				c := &Config{Source: s, OutputDir: "x"}
				return c.Validate()
			},
		}
		u, err := urlPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("base url: %w", err)
		}
		cfg.Source = u
	}

	// 2. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the rendered site",
		Default: cfg.OutputDir,
	}
	cfg.OutputDir, err = outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	// 3. Asset patterns.
	assetsPrompt := promptui.Prompt{
		Label:   "Extra asset patterns (comma-separated globs, leave blank for defaults)",
		Default: "",
	}
	assetsStr, err := assetsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("asset patterns: %w", err)
	}
	if extra := splitAndTrim(assetsStr); len(extra) > 0 {
		cfg.Assets = append(append([]string{}, DefaultAssets...), extra...)
	}

	// 4. Preview port.
	portPrompt := promptui.Prompt{
		Label:    "Port for scholarsite serve",
		Default:  strconv.Itoa(cfg.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
