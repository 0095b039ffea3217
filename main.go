package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"face-gallery/internal/catalog"
	"face-gallery/internal/config"
	"face-gallery/internal/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Searchable face-sorted photo gallery backed by Google Drive",
	Long: `Serves a gallery of photos grouped by person. Two JSON tables drive it:
face_directory.json (person -> filenames) and drive_index.json (filename -> Drive ID).`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")
	rootCmd.AddCommand(serveCmd, exportCmd, peopleCmd)
}

func main() {
	// Load .env file for local development (ignored in Docker)
	if os.Getenv("DOCKER_ENV") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using system environment variables")
		}
	}

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the configuration and installs the default logger
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)
	return cfg, nil
}

// loadCatalog fetches both lookup tables within the configured timeout
func loadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, error) {
	httpClient := &http.Client{Timeout: cfg.Data.FetchTimeout}

	directory, err := catalog.NewSource(cfg.Data.Directory, httpClient)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", catalog.ErrDirectoryUnavailable, err)
	}
	index, err := catalog.NewSource(cfg.Data.Index, httpClient)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", catalog.ErrIndexUnavailable, err)
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Data.FetchTimeout)
	defer cancel()

	return catalog.NewLoader(directory, index).Load(ctx)
}
