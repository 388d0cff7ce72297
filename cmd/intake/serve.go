package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/marcus/applicant-intake/internal/classify"
	"github.com/marcus/applicant-intake/internal/config"
	"github.com/marcus/applicant-intake/internal/extract"
	"github.com/marcus/applicant-intake/internal/llm"
	"github.com/marcus/applicant-intake/internal/mailer"
	"github.com/marcus/applicant-intake/internal/pipeline"
	"github.com/marcus/applicant-intake/internal/scoring"
	"github.com/marcus/applicant-intake/internal/server"
	"github.com/marcus/applicant-intake/internal/store"
	"github.com/marcus/applicant-intake/internal/summarize"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the intake HTTP server",
	Long:  `Start an HTTP server exposing the job-application intake endpoint.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()
	if servePort != 0 {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()

	db, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.Init(ctx); err != nil {
		db.Close()
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	llmConfig := &llm.Config{
		Provider:    llm.Provider(cfg.Provider),
		Model:       cfg.Model,
		APIKey:      cfg.GeminiAPIKey,
		Host:        cfg.OllamaHost,
		Temperature: 0.1,
	}
	if llmConfig.Model == "" {
		if llmConfig.Provider == llm.ProviderOllama {
			llmConfig.Model = llm.DefaultOllamaConfig().Model
		} else {
			llmConfig.Model = llm.DefaultConfig().Model
		}
	}
	llmClient, err := llm.NewClient(ctx, llmConfig)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to create LLM client: %w", err)
	}

	embedder, err := scoring.NewOllamaEmbedder(cfg.OllamaHost, cfg.EmbedModel)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	resendMailer, err := mailer.NewResendMailer(cfg.ResendAPIKey, cfg.MailFrom)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to create mailer: %w", err)
	}

	processor := pipeline.New(
		db,
		extract.New(),
		classify.New(llmClient),
		summarize.New(llmClient),
		scoring.New(embedder),
		mailer.NewInviter(resendMailer, db, cfg.BookingLink),
		pipeline.Config{
			UploadDir:         cfg.UploadDir,
			CapabilityTimeout: time.Duration(cfg.CapabilityTimeoutSecs) * time.Second,
		},
	)

	if cfg.ErrorLogRetentionDays > 0 {
		startRetentionLoop(db, cfg.ErrorLogRetentionDays)
	}

	srv := server.New(server.Config{Port: cfg.Port}, processor)
	srv.OnClose(func() {
		_ = llmClient.Close()
		db.Close()
	})
	return srv.Start()
}

// startRetentionLoop prunes old error-log rows once a day. Retention is a
// deployment policy; the pipeline itself never deletes log rows.
func startRetentionLoop(db *store.DB, retentionDays int) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			cutoff := time.Now().AddDate(0, 0, -retentionDays)
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			removed, err := db.PruneErrorLogs(ctx, cutoff)
			cancel()
			if err != nil {
				log.Printf("[retention] error log prune failed: %v", err)
				continue
			}
			if removed > 0 {
				log.Printf("[retention] pruned %d error log rows older than %s", removed, cutoff.Format(time.RFC3339))
			}
		}
	}()
}
