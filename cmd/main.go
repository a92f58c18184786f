package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/oppppia/ltop/config"
	"github.com/oppppia/ltop/daemon"
	"github.com/oppppia/ltop/ui"
)

// Version info set via ldflags at build time:
//
//	go build -ldflags "-X main.version=1.0.0"
var version = "dev"

var configFlag string

var rootCmd = &cobra.Command{
	Use:   "ltop",
	Short: "Terminal process monitor",
	Long: `ltop snapshots the process table and memory counters, shows a
scrollable process list, and can send SIGTERM to the selected process
after confirmation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run headless and alert on high-memory processes",
	Long: `Scan the process table periodically without a UI. Processes whose
resident memory crosses the configured threshold are reported to the
active webhook. The config file is reloaded when it changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWatch()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ltop %s\n", version)
		fmt.Printf("go: %s\n", runtime.Version())
		fmt.Printf("os/arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default ~/.ltop/config.json)")
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(versionCmd)
}

func configPath() string {
	if configFlag != "" {
		return configFlag
	}
	return config.DefaultPath()
}

func runTUI() error {
	cfg, err := config.Load(configPath())
	if err != nil {
		return err
	}

	interval := time.Duration(cfg.RefreshIntervalMS) * time.Millisecond

	p := tea.NewProgram(ui.NewModel(interval), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func runWatch() error {
	logger := log.New(os.Stderr, "[ltop] ", log.LstdFlags)

	path := configPath()
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	interval := time.Duration(cfg.RefreshIntervalMS) * time.Millisecond
	d := daemon.New(path, interval, logger)

	if err := d.Run(ctx); err != nil && err != context.Canceled {
		return err
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
