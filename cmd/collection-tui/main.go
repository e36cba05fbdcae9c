package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fakemp/collection-gen/internal/config"
	"github.com/fakemp/collection-gen/internal/tui"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	configFlag := flag.String("config", "config.json", "Path to config file")
	flag.Parse()

	settings, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := settings.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
