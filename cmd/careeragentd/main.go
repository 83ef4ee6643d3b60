package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/knnakr/careeragent/agent"
	"github.com/knnakr/careeragent/agent/adapters"
	"github.com/knnakr/careeragent/api"
	"github.com/knnakr/careeragent/internal/logging"
	"github.com/knnakr/careeragent/logstore"
	"github.com/knnakr/careeragent/notify"
	"github.com/knnakr/careeragent/profile"
)

const serveLongDesc = `Run the career assistant HTTP service.

The service accepts employer messages, generates responses with a
tool-calling LLM loop, scores every response against a quality rubric,
and revises responses that fall below the pass threshold. Approved
responses are sent; everything else is routed to human review.

Configuration is taken from flags, with API credentials from the
environment:
  ANTHROPIC_API_KEY      model provider key (required)
  TELEGRAM_BOT_TOKEN     enable Telegram notifications
  TELEGRAM_CHAT_ID       Telegram destination chat
  EMAIL_PASSWORD         SMTP password for email notifications`

type serveCommander struct {
	addr         string
	debug        bool
	ownerName    string
	cvPath       string
	linkedinPath string
	model        string

	postgresDSN string
	logsDir     string

	kafkaBrokers []string
	kafkaTopic   string

	emailHost string
	emailPort int
	emailFrom string
	emailTo   string
}

func newServeCmd() *cobra.Command {
	cmder := &serveCommander{}

	cmd := &cobra.Command{
		Use:   "careeragentd",
		Short: "Career assistant agent service",
		Long:  serveLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&cmder.addr, "addr", ":8000", "HTTP listen address")
	cmd.Flags().BoolVar(&cmder.debug, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&cmder.ownerName, "owner", "the candidate", "Name the assistant represents")
	cmd.Flags().StringVar(&cmder.cvPath, "cv", "me/cv.txt", "Path to the CV summary text file")
	cmd.Flags().StringVar(&cmder.linkedinPath, "linkedin", "me/linkedin.pdf", "Path to the LinkedIn profile PDF")
	cmd.Flags().StringVar(&cmder.model, "model", "", "Override the default model")
	cmd.Flags().StringVar(&cmder.postgresDSN, "postgres", "", "Postgres DSN for the log store (overrides --logs-dir)")
	cmd.Flags().StringVar(&cmder.logsDir, "logs-dir", "logs", "Directory for file-backed log store")
	cmd.Flags().StringSliceVar(&cmder.kafkaBrokers, "kafka-brokers", nil, "Kafka seed brokers for notification publishing")
	cmd.Flags().StringVar(&cmder.kafkaTopic, "kafka-topic", "career-assistant.notifications", "Kafka topic for notification events")
	cmd.Flags().StringVar(&cmder.emailHost, "email-host", "", "SMTP host for email notifications")
	cmd.Flags().IntVar(&cmder.emailPort, "email-port", 587, "SMTP port")
	cmd.Flags().StringVar(&cmder.emailFrom, "email-from", "", "Sender address for email notifications")
	cmd.Flags().StringVar(&cmder.emailTo, "email-to", "", "Recipient address for email notifications")

	return cmd
}

func (c *serveCommander) run(ctx context.Context) error {
	logger := logging.New(c.debug)
	defer logger.Sync() //nolint:errcheck

	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("ANTHROPIC_API_KEY is not set")
	}

	var clientOpts []adapters.AnthropicOption
	if c.model != "" {
		clientOpts = append(clientOpts, adapters.WithModel(c.model))
	}
	client := adapters.NewAnthropic(apiKey, clientOpts...)

	logs, closeLogs, err := c.buildLogStore(ctx, logger)
	if err != nil {
		return err
	}
	defer closeLogs()

	notifier, closeNotify, err := c.buildNotifier(logger)
	if err != nil {
		return err
	}
	defer closeNotify()

	prof := profile.Load(c.ownerName, c.cvPath, c.linkedinPath)

	assistant := agent.New(
		agent.WithClient(client),
		agent.WithNotifier(notifier),
		agent.WithLogs(logs),
		agent.WithProfile(prof),
		agent.WithLogger(logger),
	)

	server := api.NewServer(assistant, logs, logger)

	logger.Info("career assistant listening",
		zap.String("addr", c.addr),
		zap.String("owner", c.ownerName),
	)
	return http.ListenAndServe(c.addr, server)
}

func (c *serveCommander) buildLogStore(ctx context.Context, logger *zap.Logger) (logstore.Store, func(), error) {
	if c.postgresDSN != "" {
		store, err := logstore.NewPostgresStore(ctx, c.postgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("connect log store: %w", err)
		}
		logger.Info("using postgres log store")
		return store, store.Close, nil
	}

	store, err := logstore.NewFileStore(c.logsDir)
	if err != nil {
		return nil, nil, fmt.Errorf("open log directory: %w", err)
	}
	logger.Info("using file log store", zap.String("dir", c.logsDir))
	return store, func() {}, nil
}

func (c *serveCommander) buildNotifier(logger *zap.Logger) (notify.Notifier, func(), error) {
	var sinks []notify.Notifier
	var closers []func()

	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		chatID := os.Getenv("TELEGRAM_CHAT_ID")
		if chatID == "" {
			return nil, nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is set but TELEGRAM_CHAT_ID is not")
		}
		sinks = append(sinks, notify.NewTelegram(token, chatID))
		logger.Info("telegram notifications enabled")
	}

	if c.emailHost != "" {
		sinks = append(sinks, notify.NewEmail(notify.EmailConfig{
			Host:     c.emailHost,
			Port:     c.emailPort,
			From:     c.emailFrom,
			Password: os.Getenv("EMAIL_PASSWORD"),
			To:       c.emailTo,
		}))
		logger.Info("email notifications enabled", zap.String("host", c.emailHost))
	}

	if len(c.kafkaBrokers) > 0 {
		k, err := notify.NewKafka(c.kafkaBrokers, c.kafkaTopic)
		if err != nil {
			return nil, nil, fmt.Errorf("connect kafka: %w", err)
		}
		sinks = append(sinks, k)
		closers = append(closers, k.Close)
		logger.Info("kafka notifications enabled", zap.Strings("brokers", c.kafkaBrokers))
	}

	if len(sinks) == 0 {
		logger.Warn("no notification channels configured")
		return notify.Noop{}, func() {}, nil
	}

	async := notify.NewAsync(notify.Multi(sinks...), logger)
	closeAll := func() {
		async.Wait()
		for _, c := range closers {
			c()
		}
	}
	return async, closeAll, nil
}

func main() {
	if err := newServeCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
