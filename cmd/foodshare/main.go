package main

import (
	"os"

	"github.com/foodshare-dev/foodshare/db"
	"github.com/foodshare-dev/foodshare/internal/auth"
	"github.com/foodshare-dev/foodshare/internal/importer"
	"github.com/foodshare-dev/foodshare/internal/router"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "foodshare",
		Short: "Recipe-sharing REST API",
	}

	rootCmd.AddCommand(serveCmd(), importCmd())

	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

// setup loads the environment and connects the store. Shared by every
// subcommand.
func setup() error {
	if err := godotenv.Load(); err != nil {
		logrus.Warnf("No .env file loaded: %v", err)
	}

	if err := db.ConnectDatabase(os.Getenv("DATABASE_URL")); err != nil {
		return err
	}

	return db.MigrateDatabase()
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setup(); err != nil {
				return err
			}

			if err := auth.InitJWTSecret(); err != nil {
				return err
			}

			port := os.Getenv("PORT")

			if port == "" {
				port = "3000"
				logrus.Info("PORT not set, defaulting to 3000")
			}

			r := router.NewRouter()

			return r.Run(":" + port)
		},
	}
}

func importCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load ingredient and tag seed data from CSV files",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setup(); err != nil {
				return err
			}

			return importer.ImportSeedData(db.DB, dir)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "data", "directory containing ingredients.csv and tags.csv")

	return cmd
}
