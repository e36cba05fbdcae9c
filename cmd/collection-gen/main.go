package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fakemp/collection-gen/internal/config"
	"github.com/fakemp/collection-gen/internal/fetch"
	"github.com/fakemp/collection-gen/internal/metadata"
	"github.com/fakemp/collection-gen/internal/progress"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "collection-gen",
		Usage: "Download placeholder images and generate NFT metadata for a fake collection",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
				Value:   "config.json",
				Sources: cli.EnvVars("COLLECTION_GEN_CONFIG"),
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Show per-item progress output",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "images",
				Usage: "Download the collection's placeholder images (resumable; existing files are skipped)",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "start",
						Usage: "First index to download (inclusive)",
						Value: 0,
					},
					&cli.IntFlag{
						Name:  "end",
						Usage: "Index to stop at (exclusive; defaults to the configured item count)",
						Value: -1,
					},
				},
				Action: runImages,
			},
			{
				Name:   "metadata",
				Usage:  "Generate one metadata JSON file per item",
				Action: runMetadata,
			},
		},
	}

	if err := cmd.Run(withSignals(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// withSignals returns a context cancelled on SIGINT/SIGTERM so a long
// image run can be interrupted cleanly mid-range.
func withSignals() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	return ctx
}

func loadSettings(cmd *cli.Command) (*config.Settings, error) {
	settings, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return settings, nil
}

func printer(verbose bool) progress.Func {
	return func(event progress.Event) {
		if event.Level == progress.LevelVerbose && !verbose {
			return
		}

		prefix := "   "
		switch event.Level {
		case progress.LevelError:
			prefix = "❌ "
		case progress.LevelWarning:
			prefix = "⚠️  "
		case progress.LevelSuccess:
			prefix = "✅ "
		case progress.LevelInfo:
			prefix = "ℹ️  "
		}

		fmt.Println(prefix + event.Message)
	}
}

func runImages(ctx context.Context, cmd *cli.Command) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	start := int(cmd.Int("start"))
	end := int(cmd.Int("end"))
	if end < 0 {
		end = settings.NumItems
	}
	if start < 0 || start > end || end > settings.NumItems {
		return fmt.Errorf("invalid range [%d, %d) for a %d-item collection", start, end, settings.NumItems)
	}

	manager := fetch.NewManager(settings, printer(cmd.Bool("verbose")))
	errCount, err := manager.FetchRange(ctx, start, end)
	if err != nil {
		return err
	}

	if errCount == 0 {
		fmt.Println("Download complete. Please upload the images to IPFS and update the ipfs_folder setting.")
	}
	return nil
}

func runMetadata(ctx context.Context, cmd *cli.Command) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	pipeline := metadata.NewPipeline(settings, printer(cmd.Bool("verbose")))
	if err := pipeline.GenerateAll(ctx); err != nil {
		return err
	}

	fmt.Println("Metadata generation complete. You can now upload the metadata to IPFS.")
	return nil
}
