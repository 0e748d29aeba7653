package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/scholarsite/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site with live data for local editing",
	Long: `Starts an HTTP server that re-reads the data files on every request,
so edits to data/*.json show up on reload. Filter state can be given as
?tag= and ?q= query parameters.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (defaults to the configured port)")
	serveCmd.Flags().String("source", "", "override data source (directory or http(s) URL)")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := applySourceFlag(cmd, cfg); err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Port = port
	}

	shell, err := cfg.ReadShell()
	if err != nil {
		return err
	}
	src, err := newLoader(cfg)
	if err != nil {
		return err
	}

	siteDir := cfg.SiteDir
	if cfg.RemoteSource() {
		siteDir = ""
	}
	srv := server.New(server.Config{
		Port:     cfg.Port,
		SiteDir:  siteDir,
		Shell:    shell,
		AllowAll: cfg.AllowAllOrigins,
	}, src, logger.Named("server"))

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	url := fmt.Sprintf("http://localhost:%d", cfg.Port)
	fmt.Fprintf(os.Stderr, "scholarsite %s serving %s at %s\n", Version, cfg.Source, url)
	fmt.Fprintln(os.Stderr, "Press Ctrl+C to stop.")
	if open, _ := cmd.Flags().GetBool("open"); open {
		go openBrowser(url)
	}

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func openBrowser(url string) {
	var c *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		c = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		c = exec.Command("open", url)
	default:
		c = exec.Command("xdg-open", url)
	}
	_ = c.Start()
}
