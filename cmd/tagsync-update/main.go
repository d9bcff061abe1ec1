package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/tagsync/internal/config"
	"github.com/handiism/tagsync/internal/csvio"
	"github.com/handiism/tagsync/internal/progress"
	"github.com/handiism/tagsync/internal/update"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func main() {
	var (
		dryRunFlag    = flag.Bool("dry-run", false, "Dry run mode - do not actually modify any files")
		verboseFlag   = flag.Bool("verbose", false, "Verbose output")
		recursiveFlag = flag.Bool("recursive", false, "Search for files recursively in subfolders")
		renameFlag    = flag.Bool("rename-files", false, "Rename files to include track numbers if missing")
		configFlag    = flag.String("config", "", "Path to config file")
	)

	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Println("tagsync-update - Update audio file tags from a CSV file")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  tagsync-update [options] <csv-file> <input-folder>")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  tagsync-update metadata.csv /path/to/music")
		fmt.Println("  tagsync-update -recursive -verbose -rename-files metadata.csv /path/to/music")
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
	if *dryRunFlag {
		settings.DryRun = true
	}
	if *verboseFlag {
		settings.Verbose = true
	}
	if *recursiveFlag {
		settings.Recursive = true
	}
	if *renameFlag {
		settings.RenameFiles = true
	}

	csvPath := flag.Arg(0)
	inputFolder := flag.Arg(1)

	table, err := csvio.Read(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	updater := update.NewUpdater(settings, renderEvent(settings.Verbose))

	stats, _, err := updater.Run(table, inputFolder)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printSummary(stats, settings)
}

// renderEvent prints driver events with level prefixes, filtering verbose
// detail unless asked for.
func renderEvent(verbose bool) progress.Func {
	return func(event progress.Event) {
		if event.Level == progress.LevelVerbose && !verbose {
			return
		}

		switch event.Level {
		case progress.LevelError:
			fmt.Println(errStyle.Render("error: ") + event.Message)
		case progress.LevelWarning:
			fmt.Println(warnStyle.Render("warning: ") + event.Message)
		case progress.LevelSuccess:
			fmt.Println(okStyle.Render("ok: ") + event.Message)
		default:
			fmt.Println(event.Message)
		}
	}
}

func printSummary(stats update.Stats, settings *config.Settings) {
	fmt.Println()
	fmt.Println(headerStyle.Render("Update complete:"))
	fmt.Printf("Total files processed: %d\n", stats.Total)
	fmt.Printf("Files updated: %s\n", okStyle.Render(fmt.Sprintf("%d", stats.Updated)))
	if settings.RenameFiles {
		fmt.Printf("Files renamed: %d\n", stats.Renamed)
	}
	fmt.Printf("Files failed: %s\n", errStyle.Render(fmt.Sprintf("%d", stats.Failed)))
	fmt.Printf("Files skipped: %d\n", stats.Skipped)
	fmt.Printf("Files not found: %d\n", stats.NotFound)

	if settings.DryRun {
		fmt.Println()
		fmt.Println(warnStyle.Render("This was a dry run - no files were actually modified."))
	}
}
