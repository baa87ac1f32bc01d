package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/lumine/ytmusic-downloader/internal/config"
	"github.com/lumine/ytmusic-downloader/internal/download"
)

func main() {
	// Command line flags
	var (
		queryFlag    = flag.String("query", "", "Song query in \"Artist - Title\" form")
		batchFlag    = flag.String("batch", "", "Path to a file with one query per line")
		outputFlag   = flag.String("output", "", "Output directory (overrides config)")
		configFlag   = flag.String("config", "", "Path to config file")
		artistFlag   = flag.String("artist", "Various Artists", "Album artist for the batch folder")
		albumFlag    = flag.String("album", "Downloads", "Album title for the batch folder")
		playlistFlag = flag.Bool("playlist", false, "Create playlist file")
		verboseFlag  = flag.Bool("verbose", false, "Show verbose output")
		dryRunFlag   = flag.Bool("dry-run", false, "Parse queries without downloading")
	)

	flag.Parse()

	// CLI mode - require a query source
	if *queryFlag == "" && *batchFlag == "" && flag.NArg() == 0 {
		fmt.Println("YouTube Music Downloader - Search, convert and download songs as MP3")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  ytm-dl -query \"Artist - Title\" [options]")
		fmt.Println("  ytm-dl -batch queries.txt [options]")
		fmt.Println("  ytm-dl \"Artist - Title\" [options]")
		fmt.Println()
		fmt.Println("For interactive mode, use: ytm-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if *outputFlag != "" {
		settings.DownloadsPath = *outputFlag + "/{artist}/{album}"
	}
	if *playlistFlag {
		settings.CreatePlaylist = true
	}

	// Collect query lines
	input := *queryFlag
	if input == "" && flag.NArg() > 0 {
		input = strings.Join(flag.Args(), "\n")
	}
	if *batchFlag != "" {
		data, err := os.ReadFile(*batchFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading batch file: %v\n", err)
			os.Exit(1)
		}
		if input != "" {
			input += "\n"
		}
		input += string(data)
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	// Create manager with progress callback
	manager := download.NewManager(settings, func(event download.ProgressEvent) {
		if event.Level == download.LevelVerbose && !*verboseFlag {
			return
		}

		prefix := ""
		switch event.Level {
		case download.LevelError:
			prefix = "❌ "
		case download.LevelWarning:
			prefix = "⚠️  "
		case download.LevelSuccess:
			prefix = "✅ "
		case download.LevelInfo:
			prefix = "ℹ️  "
		default:
			prefix = "   "
		}

		fmt.Println(prefix + event.Message)
	})

	fmt.Println("🎵 YouTube Music Downloader")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println()

	if err := manager.Initialize(input, *artistFlag, *albumFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing: %v\n", err)
		os.Exit(1)
	}

	if *dryRunFlag {
		fmt.Println("\n[Dry run - not downloading]")
		for _, name := range manager.TrackNames() {
			fmt.Println("  " + name)
		}
		return
	}

	// Start downloads
	fmt.Println("\n📥 Starting downloads...")
	fmt.Println()

	if err := manager.Download(ctx); err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nDownload cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error during download: %v\n", err)
		os.Exit(1)
	}

	completed, failed, total := manager.GetProgress()
	fmt.Println()
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("✨ Complete! Downloaded %d/%d tracks\n", completed, total)
	if failed > 0 {
		fmt.Printf("   %d track(s) failed:\n", failed)
		for _, outcome := range manager.Outcomes() {
			if !outcome.OK() {
				fmt.Printf("   - %s: %s\n", outcome.Query.Text(), outcome.Kind)
			}
		}
		os.Exit(1)
	}
}
