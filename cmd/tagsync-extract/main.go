package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/tagsync/internal/config"
	"github.com/handiism/tagsync/internal/csvio"
	"github.com/handiism/tagsync/internal/extract"
	"github.com/handiism/tagsync/internal/progress"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func main() {
	var (
		outputFlag    = flag.String("output", "music_tags.csv", "Output CSV file name")
		recursiveFlag = flag.Bool("recursive", false, "Search subdirectories recursively")
		verboseFlag   = flag.Bool("verbose", false, "Enable verbose output")
		workersFlag   = flag.Int("workers", 0, "Concurrent file reads (0 uses the config value)")
		configFlag    = flag.String("config", "", "Path to config file")
	)

	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Println("tagsync-extract - Extract music tag data and export as CSV")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  tagsync-extract [options] <directory>")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if *recursiveFlag {
		settings.Recursive = true
	}
	if *verboseFlag {
		settings.Verbose = true
	}
	if *workersFlag > 0 {
		settings.Workers = *workersFlag
	}

	// Interrupts stop the scan between files.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	extractor := extract.NewExtractor(settings, func(event progress.Event) {
		if event.Level == progress.LevelVerbose && !settings.Verbose {
			return
		}
		switch event.Level {
		case progress.LevelError:
			fmt.Println(errStyle.Render("error: ") + event.Message)
		case progress.LevelWarning:
			fmt.Println(warnStyle.Render("warning: ") + event.Message)
		default:
			fmt.Println(event.Message)
		}
	})

	records, err := extractor.Run(ctx, flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(records) == 0 {
		fmt.Println("No music files found in the specified directory.")
		return
	}

	rows := make([]csvio.Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, csvio.RecordRow(rec, settings.OutputColumns))
	}
	if err := csvio.Write(*outputFlag, settings.OutputColumns, rows); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(okStyle.Render(fmt.Sprintf("Successfully exported %d music files' tag data to %s", len(records), *outputFlag)))
}
