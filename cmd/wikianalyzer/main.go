package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"WikiAnalyzer/internal/app"
	"WikiAnalyzer/internal/config"
	"WikiAnalyzer/internal/domain"
	"WikiAnalyzer/internal/logging"
	"WikiAnalyzer/internal/presenter"
)

var version = "dev"

var (
	verbose    bool
	configPath string
	cfg        config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "wikianalyzer",
	Short:        "Fetch a Wikipedia article and report text metrics",
	Version:      version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}
		if configPath != "" {
			cfg = config.LoadFile(configPath)
		} else {
			cfg = config.Load()
		}
		if verbose {
			cfg.Logging.Level = "debug"
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("wikianalyzer", version)
	},
}

// --- analyze command ---

var (
	format     string
	outputPath string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <url>",
	Short: "Analyze one article and print the report",
	Args:  cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return validateFormat(format)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.New(cfg.Logging.Level)
		application := app.New(cfg, logger)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		result, err := application.Analyze(ctx, args[0])
		if err != nil {
			logger.Debug("analysis failed", "error", err)
			return errors.New(presenter.Describe(err))
		}

		if outputPath == "" {
			return render(cmd.OutOrStdout(), result)
		}
		return writeReport(outputPath, result)
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, markdown, html, json, jsonl")
	analyzeCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the report to a file instead of stdout")
}

var formats = []string{"text", "markdown", "md", "html", "json", "jsonl"}

func validateFormat(name string) error {
	for _, f := range formats {
		if f == name {
			return nil
		}
	}
	return fmt.Errorf("unknown format %q (want one of %s)", name, strings.Join(formats, ", "))
}

// writeReport renders into path; a failed close counts as a failed write.
func writeReport(path string, result domain.AnalysisResult) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output: %w", cerr)
		}
	}()
	return render(f, result)
}

func render(w io.Writer, result domain.AnalysisResult) error {
	switch format {
	case "text", "markdown", "md":
		_, err := io.WriteString(w, presenter.Markdown(result, presenter.DefaultOptions))
		return err
	case "html":
		body, err := presenter.HTML(result, presenter.DefaultOptions)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, body)
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "jsonl":
		return presenter.WriteJSONLines(w, result.Metrics)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// --- serve command ---

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if serveAddr != "" {
			cfg.Server.Addr = serveAddr
		}
		logger := logging.New(cfg.Logging.Level)
		application := app.New(cfg, logger)

		srv := &http.Server{
			Addr:              cfg.Server.Addr,
			Handler:           application.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logger.Info("server listening", "addr", cfg.Server.Addr)
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Info("server stopping")
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides config)")
}
