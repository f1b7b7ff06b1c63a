package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/ticketoffice/config"
	"github.com/Domenick1991/ticketoffice/internal/bootstrap"
	"github.com/Domenick1991/ticketoffice/internal/cache"
	"github.com/Domenick1991/ticketoffice/internal/kafka"
	"github.com/Domenick1991/ticketoffice/internal/notify"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "ticketoffice-worker",
	Short:        "Sends passenger notifications for ticket events",
	SilenceUsage: true,
	RunE:         runWorker,
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

func runWorker(cmd *cobra.Command, _ []string) error {
	path, explicit := config.ResolvePath(configPath, cmd.Flags().Changed("config"))
	cfg, err := config.LoadOrDefault(path, explicit)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if len(cfg.Kafka.Brokers) == 0 || cfg.Kafka.NotificationsTopic == "" {
		return errors.New("worker needs kafka.brokers and kafka.notifications_topic")
	}

	logger, err := bootstrap.NewLogger(cfg.Log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisCache := cache.NewRedisCache(cfg.Redis)
	defer redisCache.Close()
	if err := redisCache.Ping(ctx); err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic, logger)
	defer consumer.Close()

	dispatcher := notify.NewDispatcher(redisCache, notify.NewSender(logger), cfg.Worker.DedupTTL(), logger)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return consumer.Consume(ctx, dispatcher.Handle)
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("notification worker shutting down")
		return nil
	})

	logger.WithField("topic", cfg.Kafka.NotificationsTopic).Info("notification worker started")
	if err := g.Wait(); err != nil {
		logger.WithError(err).Error("notification worker stopped")
		return err
	}
	return nil
}
