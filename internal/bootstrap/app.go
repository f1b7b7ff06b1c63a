package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Domenick1991/ticketoffice/config"
	"github.com/Domenick1991/ticketoffice/internal/console"
	"github.com/Domenick1991/ticketoffice/internal/inventory"
	"github.com/Domenick1991/ticketoffice/internal/kafka"
	"github.com/Domenick1991/ticketoffice/internal/service/flights"
	"github.com/Domenick1991/ticketoffice/internal/service/registry"
	"github.com/sirupsen/logrus"
)

// NewLogger builds the process logger. Output goes to stderr so it never
// mixes with the console on stdout.
func NewLogger(cfg config.LogConfig) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(level)

	switch cfg.Format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}
	return logger, nil
}

// Run wires the registry and serves the console on in/out until the
// operator leaves or ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, log logrus.FieldLogger, in io.Reader, out io.Writer) error {
	opts := []registry.ServiceOption{registry.WithLogger(log)}

	if cfg.Kafka.Enabled() {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, log)
		defer func() {
			if err := producer.Close(); err != nil {
				log.WithError(err).Warn("failed to close kafka producer")
			}
		}()
		opts = append(opts,
			registry.WithProducer(producer, cfg.Kafka.TicketTopic),
			registry.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		)
	} else {
		log.Debug("kafka disabled, ticket events will not be published")
	}

	registryService := registry.NewInMemory(
		[]inventory.Option{inventory.WithRandomAttempts(cfg.Seats.RandomAttempts)},
		opts...,
	)
	flightService := flights.NewFlightService(registryService)

	log.WithField("random_attempts", cfg.Seats.RandomAttempts).Info("ticket office started")
	defer log.Info("ticket office closed")

	return console.New(registryService, flightService, in, out, console.WithLogger(log)).Run(ctx)
}
