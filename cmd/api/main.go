package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"caritasAPI/cmd/app"
	"caritasAPI/internal/config"
	handlers "caritasAPI/internal/handler"
	"caritasAPI/internal/models"
)

var (
	verbose bool

	cfg    *config.Config
	logger *zap.Logger

	adminUsername string
	adminEmail    string
	adminPassword string
)

var rootCmd = &cobra.Command{
	Use:   "caritas",
	Short: "Caritas website API",
	Long: `Backend for the bilingual (English/Shona) Caritas website.

Run without arguments to start the HTTP server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.LoadConfig()
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		var err error
		logger, err = app.NewLogger(cfg, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Serve(cmd.Context(), cfg, logger)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Connect, migrate, seed and start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Serve(cmd.Context(), cfg, logger)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the schema and default site settings, then exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Migrate(cmd.Context(), cfg, logger)
	},
}

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an admin account directly in the store",
	Long: `Creates an admin account without going through the API.

Example:
  caritas create-admin --username admin --email admin@caritasmutare.org --password s3cret!`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := models.RegisterRequest{
			Username: adminUsername,
			Email:    adminEmail,
			Password: adminPassword,
			Role:     string(models.RoleAdmin),
		}
		if err := handlers.NewValidator().Struct(req); err != nil {
			return fmt.Errorf("invalid admin account: %w", err)
		}
		return app.CreateAdmin(cmd.Context(), cfg, logger, req)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	createAdminCmd.Flags().StringVar(&adminUsername, "username", "", "admin username")
	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "admin email")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "admin password (at least 6 characters)")
	createAdminCmd.MarkFlagRequired("username")
	createAdminCmd.MarkFlagRequired("email")
	createAdminCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(serveCmd, migrateCmd, createAdminCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
