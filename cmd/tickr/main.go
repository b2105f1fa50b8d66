package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"tickr-book/internal/client"
	"tickr-book/internal/config"
	"tickr-book/internal/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	server := flag.String("server", cfg.Client.BaseURL, "trade book server base URL")
	verbose := flag.Bool("v", false, "log requests")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}

	level := "warn"
	if *verbose {
		level = "debug"
	}
	log, err := logger.NewLogger(level, "console")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	cfg.Client.BaseURL = *server
	rc := client.NewRestClient(&cfg.Client, log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := run(ctx, rc, flag.Args(), os.Stdout, time.Now); err != nil {
		if errors.Is(err, errUsage) {
			usage()
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: tickr [-server URL] [-v] <command> [options]\n\n")
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  add           Record a trade (-stock -type -price -qty -date -strategy)\n")
	fmt.Fprintf(os.Stderr, "  trades        List every trade\n")
	fmt.Fprintf(os.Stderr, "  stocks        Per-stock summary (-strategy -search -sort stock|date)\n")
	fmt.Fprintf(os.Stderr, "  show          Trades of one stock (-stock -strategy)\n")
	fmt.Fprintf(os.Stderr, "  delete        Delete one trade by id\n")
	fmt.Fprintf(os.Stderr, "  delete-stock  Delete the trades of a stock (-stock -strategy)\n")
	fmt.Fprintf(os.Stderr, "  names         Known stock names (-prefix for suggestions)\n")
	fmt.Fprintf(os.Stderr, "\n")
}
