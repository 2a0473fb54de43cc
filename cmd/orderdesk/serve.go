package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/solvelysaid/orderdesk/internal/chat"
	"github.com/solvelysaid/orderdesk/internal/cleanup"
	"github.com/solvelysaid/orderdesk/internal/config"
	"github.com/solvelysaid/orderdesk/internal/db"
	"github.com/solvelysaid/orderdesk/internal/llm"
	"github.com/solvelysaid/orderdesk/internal/menu"
	"github.com/solvelysaid/orderdesk/internal/notify"
	"github.com/solvelysaid/orderdesk/internal/order"
	"github.com/solvelysaid/orderdesk/internal/server"
	"github.com/solvelysaid/orderdesk/internal/transcribe"
)

func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the Orderdesk API server",
		Long: `Connects to the database, migrates and seeds the menu catalog, wires the
chat engine and transcriber, and serves the HTTP API until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "orderdesk.yaml", "path to Orderdesk config file")
	return cmd
}

func runServe(cmd *cobra.Command, configPath string) error {
	out := cmd.OutOrStdout()

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	gormDB, err := db.Connect(cfg.Database)
	if err != nil {
		return err
	}
	if err := db.AutoMigrate(gormDB); err != nil {
		return err
	}
	if err := db.SeedMenus(gormDB); err != nil {
		return err
	}

	menus, err := menu.NewRepo(gormDB)
	if err != nil {
		return err
	}
	orders, err := order.NewRepo(gormDB)
	if err != nil {
		return err
	}

	store, err := buildStore(cfg)
	if err != nil {
		return err
	}

	apiKey := os.Getenv(cfg.LLM.APIKeyEnv)
	llmClient, err := llm.New(llm.Opts{
		BaseURL:     cfg.LLM.BaseURL,
		APIKey:      apiKey,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
	})
	if err != nil {
		return err
	}

	engine, err := chat.NewEngine(chat.EngineOpts{
		Store:              store,
		LLM:                llmClient,
		LLMTimeout:         cfg.LLMTimeout(),
		MaxTranscriptTurns: cfg.Sessions.MaxTranscriptTurns,
	})
	if err != nil {
		return err
	}

	transcriber, err := transcribe.New(transcribe.Opts{
		BaseURL: cfg.Transcriber.BaseURL,
		APIKey:  os.Getenv(cfg.Transcriber.APIKeyEnv),
		Model:   cfg.Transcriber.Model,
	})
	if err != nil {
		return err
	}

	notifier, err := buildNotifier(cfg)
	if err != nil {
		return err
	}

	srv, err := server.New(server.Opts{
		Engine:         engine,
		Transcriber:    transcriber,
		Menus:          menus,
		Orders:         orders,
		Notifier:       notifier,
		LoginPassword:  cfg.Server.LoginPassword,
		UploadDir:      cfg.Server.UploadDir,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Port:           cfg.Server.Port,
		MaxOrderAge:    cfg.MaxOrderAge(),
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	purger, err := cleanup.New(cleanup.Opts{
		Purge:    orders.PurgeOlderThan,
		MaxAge:   cfg.MaxOrderAge(),
		Schedule: cfg.Cleanup.Schedule,
	})
	if err != nil {
		return err
	}
	purger.Start(ctx)

	fmt.Fprintf(out, "Orderdesk API listening on :%d\n", cfg.Server.Port)
	return srv.Start(ctx)
}

// loadConfig loads a config file, falling back to defaults when the default
// path does not exist.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) && path == "orderdesk.yaml" {
		log.Printf("orderdesk: %s not found, using defaults", path)
		return config.Default(), nil
	}
	return config.Load(path)
}

// buildStore picks the configured session store backend.
func buildStore(cfg *config.Config) (chat.Store, error) {
	switch cfg.Sessions.Store {
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.Sessions.RedisAddr})
		ttl := time.Duration(cfg.Sessions.RedisTTLHours) * time.Hour
		return chat.NewRedisStore(client, ttl)
	default:
		return chat.NewMemoryStore(), nil
	}
}

// buildNotifier assembles the staff notification fan-out from whatever
// platform credentials are configured.
func buildNotifier(cfg *config.Config) (notify.Notifier, error) {
	var notifiers []notify.Notifier

	if cfg.Notify.SlackBotToken != "" {
		slack, err := notify.NewSlack(notify.SlackOpts{
			BotToken:  cfg.Notify.SlackBotToken,
			ChannelID: cfg.Notify.SlackChannel,
		})
		if err != nil {
			return nil, err
		}
		notifiers = append(notifiers, slack)
	}
	if cfg.Notify.DiscordToken != "" {
		discord, err := notify.NewDiscord(notify.DiscordOpts{
			BotToken:  cfg.Notify.DiscordToken,
			ChannelID: cfg.Notify.DiscordChannel,
		})
		if err != nil {
			return nil, err
		}
		notifiers = append(notifiers, discord)
	}

	return notify.NewMulti(notifiers...), nil
}
