// filepath: internal/cli/root.go
package cli

import (
	"context"
	"fmt"
	"itemhub/internal/api"
	"itemhub/internal/api/handlers"
	"itemhub/internal/config"
	"itemhub/internal/imagestore"
	"itemhub/internal/logging"
	"itemhub/internal/repository"
	"itemhub/internal/services"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
)

var (
	// Global config object populated by flags/env/file
	cfg *config.Config

	// Flags
	cfgFile   string
	port      int
	logLevel  string
	dbPath    string
	imageRoot string
	frontURL  string
)

// RootCmd represents the base command when called without any subcommands.
// It starts the HTTP server.
var RootCmd = &cobra.Command{
	Use:   "itemhub",
	Short: "ItemHub API",
	Long:  `A REST API for listing items with categories and content-addressed images.`,
	// PersistentPreRunE loads the configuration before any command runs.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config_path", "config.toml", "Path to the base configuration file. (Env: ITEMHUB_CONFIG_PATH)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Logging level (debug, info, warn, error). (Env: ITEMHUB_LOG_LEVEL)")

	// Server-specific flags
	RootCmd.Flags().IntVar(&port, "port", 0, "Port for the HTTP server. (Env: ITEMHUB_PORT)")
	RootCmd.Flags().StringVar(&dbPath, "db-path", "", "Path to the SQLite database file. (Env: ITEMHUB_DATABASE_PATH)")
	RootCmd.Flags().StringVar(&imageRoot, "image-root", "", "Directory for content-addressed image blobs. (Env: ITEMHUB_IMAGE_ROOT)")
	RootCmd.Flags().StringVar(&frontURL, "front-url", "", "Frontend origin allowed by CORS. (Env: FRONT_URL)")
}

// initializeConfig loads and overrides configuration values.
func initializeConfig(cmd *cobra.Command) error {
	// 0. Load a .env file if present; ignore a missing one.
	_ = godotenv.Load()

	// 1. Check environment variable for config path first
	if envPath := os.Getenv("ITEMHUB_CONFIG_PATH"); envPath != "" && cfgFile == "config.toml" {
		cfgFile = envPath
	}

	var err error
	cfg, err = config.LoadConfig(cfgFile)
	if err != nil {
		if os.IsNotExist(err) {
			// Create empty config if not found, rely on defaults/flags
			cfg = &config.Config{}
		} else {
			return fmt.Errorf("failed to load configuration from %s: %w", cfgFile, err)
		}
	}

	// 2. Apply Overrides (Env Vars and CLI Flags)
	applyOverrides(cfg, cmd)

	// 3. Validate
	if err := cfg.ParseAndValidate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// 4. Initialize Logging
	logging.Init(cfg.Logging.Level)
	goose.SetLogger(logging.Log)

	return nil
}

func applyOverrides(c *config.Config, cmd *cobra.Command) {
	getEnv := func(key string) string { return os.Getenv(key) }

	// --- Environment Variables ---
	if v := getEnv("ITEMHUB_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := getEnv("ITEMHUB_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := getEnv("ITEMHUB_DATABASE_PATH"); v != "" {
		c.Database.Path = v
	}
	if v := getEnv("ITEMHUB_IMAGE_ROOT"); v != "" {
		c.Storage.ImageRoot = v
	}
	if v := getEnv("FRONT_URL"); v != "" {
		c.Server.FrontendOrigin = v
	}

	// --- CLI Flags (Take precedence) ---
	if port != 0 {
		c.Server.Port = port
	}
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if dbPath != "" {
		c.Database.Path = dbPath
	}
	if imageRoot != "" {
		c.Storage.ImageRoot = imageRoot
	}
	if frontURL != "" {
		c.Server.FrontendOrigin = frontURL
	}

	// --- Defaults ---
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 9000
	}
	if c.Server.FrontendOrigin == "" {
		c.Server.FrontendOrigin = "http://localhost:3000"
	}
	if c.Database.Path == "" {
		c.Database.Path = "itemhub.db"
	}
	if c.Storage.ImageRoot == "" {
		c.Storage.ImageRoot = "images"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// runServer contains the logic to start the HTTP server with graceful shutdown.
func runServer() error {
	repo, err := repository.NewRepository(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize repository: %w", err)
	}
	defer repo.Close()

	// --- Auto-migrate on startup ---
	if err := repo.EnsureSchema(); err != nil {
		logging.Log.Errorf("Failed to bootstrap database: %v", err)
		return err
	}

	store, err := imagestore.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize image store: %w", err)
	}

	// Service Initialization
	imageService := services.NewImageService(store)
	catalogService := services.NewCatalogService(repo, imageService)

	h := handlers.NewHandlers(catalogService, imageService, cfg)
	r := api.SetupRouter(h, cfg)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    serverAddr,
		Handler: r,
	}

	// --- Graceful Shutdown Setup ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Run server in a goroutine
	go func() {
		logging.Log.Infof("Server starting on %s (db: %s, images: %s)", serverAddr, cfg.Database.Path, cfg.Storage.ImageRoot)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Block until a signal is received
	<-stop
	logging.Log.Info("Shutting down server...")

	// Create a deadline for existing requests to complete (30 seconds)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Log.Errorf("Server forced to shutdown: %v", err)
		return err
	}

	logging.Log.Info("Server exiting")
	return nil
}
