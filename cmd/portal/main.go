package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/rentdesk/portal/internal/app"
	"github.com/rentdesk/portal/internal/config"
	"github.com/rentdesk/portal/internal/utils"
)

func serve() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize application:", err)
	}

	co := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AppURL},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(application.Router())); err != nil {
		utils.Logger.Fatal("Failed to start server:", err)
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "portal",
		Short: "Property management web portal",
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the portal HTTP server",
		Run: func(cmd *cobra.Command, args []string) {
			serve()
		},
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
