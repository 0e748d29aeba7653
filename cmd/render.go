package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/scholarsite/internal/progress"
	"github.com/ziadkadry99/scholarsite/internal/site"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the site into a static directory",
	Long: `Loads every data file once, fills the page and writes index.html,
style.css, script.js, the data files and the configured assets into the
output directory.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().String("output", "", "override output directory")
	renderCmd.Flags().String("source", "", "override data source (directory or http(s) URL)")
	renderCmd.Flags().Bool("strict", false, "exit non-zero when any data file failed to load")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := applySourceFlag(cmd, cfg); err != nil {
		return err
	}
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.OutputDir = out
	}

	shell, err := cfg.ReadShell()
	if err != nil {
		return err
	}
	src, err := newLoader(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	gen := &site.Generator{
		Source:    src,
		Shell:     shell,
		SiteDir:   cfg.SiteDir,
		Assets:    cfg.Assets,
		OutputDir: cfg.OutputDir,
		Reporter:  progress.NewReporter(),
		Logger:    logger.Named("render"),
	}
	res, err := gen.Generate(ctx)
	if err != nil {
		return fmt.Errorf("rendering site: %w", err)
	}

	fmt.Printf("Site rendered: %s (%d files, build %s)\n", cfg.OutputDir, len(res.Files), res.BuildID)
	if res.LoadErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: some data failed to load; the page shows an error banner:\n%v\n", res.LoadErr)
		if strict, _ := cmd.Flags().GetBool("strict"); strict {
			return fmt.Errorf("data failed to load")
		}
	}
	return nil
}
