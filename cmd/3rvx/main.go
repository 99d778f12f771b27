// Package main is the entry point for the 3rvx hotkey daemon CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ccxla/3RVX/internal/config"
	"github.com/ccxla/3RVX/internal/hotkey"
)

var (
	// version is set at build time via -ldflags.
	version = "dev"
	// commit is set at build time via -ldflags.
	commit = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "3rvx",
		Short:   "Volume and media hotkey daemon",
		Version: fmt.Sprintf("%s (%s)", version, commit),
	}

	root.PersistentFlags().String("config", "", "path to 3rvx.toml (default: platform config dir)")

	root.AddCommand(
		runCmd(),
		validateCmd(),
		actionsCmd(),
		initCmd(),
	)

	return root
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the daemon with its tray icon",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			return runDaemon(path)
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the config file and every hotkey definition",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Validation reasons log through the global logger; make
			// them readable on a terminal.
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

			path, _ := cmd.Flags().GetString("config")
			report, err := validateConfig(path)
			fmt.Print(report)
			return err
		},
	}
}

func actionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "actions",
		Short: "List the hotkey actions and media keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(formatActionTables())
			return nil
		},
	}
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a default 3rvx.toml",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := filepath.Dir(config.Path())
			if flag, _ := cmd.Flags().GetString("config"); flag != "" {
				dir = filepath.Dir(flag)
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("create config dir: %w", err)
			}
			path, err := config.InitFile(dir)
			if err != nil {
				return err
			}
			fmt.Printf("Created %s\n", path)
			return nil
		},
	}
}

// validateConfig loads the config at path and checks every hotkey
// entry. The returned report is printable regardless of the error.
func validateConfig(path string) (string, error) {
	if path == "" {
		path = config.Path()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return "", err
	}
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Hotkeys\n")
	b.WriteString("───────\n")

	defs := cfg.Definitions()
	skipped := len(cfg.Hotkeys) - len(defs)

	invalid := 0
	for _, def := range defs {
		if !def.Valid() {
			invalid++
			fmt.Fprintf(&b, "  ❌ %s\n", def.String())
			continue
		}
		fmt.Fprintf(&b, "  ✅ %s\n", def.String())
	}

	fmt.Fprintf(&b, "\n%d entries: %d ok, %d invalid, %d unparseable\n",
		len(cfg.Hotkeys), len(defs)-invalid, invalid, skipped)

	if invalid+skipped > 0 {
		return b.String(), fmt.Errorf("%d hotkey entries failed validation", invalid+skipped)
	}
	return b.String(), nil
}

// formatActionTables renders the tables the config file's action and
// args fields refer to.
func formatActionTables() string {
	var b strings.Builder

	b.WriteString("Actions\n")
	b.WriteString("───────\n")
	for i, name := range hotkey.ActionNames() {
		fmt.Fprintf(&b, "  %2d  %s\n", i, name)
	}

	b.WriteString("\nMedia Keys\n")
	b.WriteString("──────────\n")
	for i, name := range hotkey.MediaKeyNames() {
		fmt.Fprintf(&b, "  %2d  %-10s 0x%02X\n", i, name, hotkey.Key(i).VK())
	}

	return b.String()
}

// signalContext returns a context that is cancelled on SIGINT or SIGTERM.
func signalContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		cancel()
	}()
	return ctx
}
