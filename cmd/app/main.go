package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/ticketoffice/config"
	"github.com/Domenick1991/ticketoffice/internal/bootstrap"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "ticketoffice",
	Short:        "Ticket office console for GOLONDRINA VELOZ",
	Long:         `Runs the interactive counter: book tickets, change seats, print boarding passes and cancel reservations for the national and international flights.`,
	SilenceUsage: true,
	RunE:         runTicketOffice,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", config.DefaultPath,
		"path to the YAML config file (env "+config.PathEnv+")")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runTicketOffice(cmd *cobra.Command, _ []string) error {
	path, explicit := config.ResolvePath(configPath, cmd.Flags().Changed("config"))
	cfg, err := config.LoadOrDefault(path, explicit)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := bootstrap.NewLogger(cfg.Log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := bootstrap.Run(ctx, cfg, logger, os.Stdin, os.Stdout); err != nil {
		logger.WithError(err).Error("ticket office stopped")
		return err
	}
	return nil
}
