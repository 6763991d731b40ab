package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jbaviation/usga-golf-courses/internal/batch"
	"github.com/jbaviation/usga-golf-courses/internal/config"
	"github.com/jbaviation/usga-golf-courses/internal/course"
	"github.com/jbaviation/usga-golf-courses/internal/logger"
	"github.com/jbaviation/usga-golf-courses/internal/scraper"
	"github.com/jbaviation/usga-golf-courses/internal/storage"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig      string
	flagDataDir     string
	flagBaseURL     string
	flagStates      []string
	flagDate        string
	flagArchiveDate string
	flagVerbose     bool
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "usga-courses",
		Short: "Incrementally pull golf course and tee data from the USGA NCRDB",
		Long: `Pulls course listings state by state from the USGA National Course
Rating Database, fetches tee details per course, reconciles everything
against a previous snapshot, and writes dated CSV files.`,
		RunE: runPull,
	}

	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	cmd.Flags().StringVar(&flagDataDir, "data-dir", "", "Override the snapshot folder")
	cmd.Flags().StringVar(&flagBaseURL, "base-url", "", "Override the NCRDB base URL")
	cmd.Flags().StringSliceVar(&flagStates, "states", nil, "States to pull (default: all)")
	cmd.Flags().StringVar(&flagDate, "date", "", "Snapshot date stamp (default: today)")
	cmd.Flags().StringVar(&flagArchiveDate, "archive-date", "", "Date of a previous snapshot to reconcile against")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(newStatesCmd())

	return cmd
}

// loadConfig builds the run configuration from the optional config
// file plus flag overrides.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if flagDataDir != "" {
		cfg.StorageRoot = flagDataDir
	}
	if flagBaseURL != "" {
		cfg.BaseURL = flagBaseURL
	}
	return cfg, nil
}

// runPull is the main command logic: states -> listings -> details ->
// snapshot files.
func runPull(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	date, err := storage.NormalizeDate(flagDate)
	if err != nil {
		return err
	}

	store, err := storage.New(cfg.StorageRoot)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	ctx := cmd.Context()

	sc := scraper.New(cfg.BaseURL, cfg.FetchTimeout())
	states, err := sc.FetchStates(ctx)
	if err != nil {
		return fmt.Errorf("fetching states: %w", err)
	}
	states = filterStates(states, flagStates)
	if len(states) == 0 {
		return fmt.Errorf("no states match %v", flagStates)
	}
	logger.Info("starting pull", logger.Fields{
		"states": len(states),
		"date":   date,
	})

	// Previous snapshot, when an incremental pull was requested.
	var archive, existing *course.Archive
	if flagArchiveDate != "" {
		prev, err := store.LoadCourses(flagArchiveDate)
		if err != nil {
			return err
		}
		archive = course.NewArchive(prev)

		prevBuckets, err := store.LoadBuckets([]course.Bucket{course.BucketAll}, []string{flagArchiveDate})
		if err != nil {
			return err
		}
		existing = course.NewArchive(prevBuckets.Get(course.BucketAll))
	}

	renderer := scraper.NewBrowserRenderer(cfg.BaseURL, cfg.FetchTimeout())
	orch := batch.NewOrchestrator(renderer, cfg.BaseURL, cfg.PacingDelay())
	listings, err := orch.Run(ctx, states, archive)
	if err != nil {
		return fmt.Errorf("pulling listings: %w", err)
	}

	client := course.NewClient(cfg.BaseURL, cfg.FetchTimeout())
	agg := batch.NewAggregator(client, cfg.PacingDelay(), printProgress)
	buckets, err := agg.Run(ctx, listings, existing)
	if err != nil {
		return fmt.Errorf("pulling details: %w", err)
	}

	if err := store.SaveCourses(listings, date); err != nil {
		return fmt.Errorf("saving courses: %w", err)
	}
	if err := store.SaveBuckets(buckets, date); err != nil {
		return fmt.Errorf("saving details: %w", err)
	}

	printSummary(date, listings, buckets)
	if flagVerbose {
		logger.Debug("run metrics", logger.Fields{"metrics": logger.MetricsSnapshot()})
	}
	return nil
}

// newStatesCmd lists the available states without scraping anything.
func newStatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "states",
		Short: "List the states offered by the NCRDB search form",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			sc := scraper.New(cfg.BaseURL, cfg.FetchTimeout())
			states, err := sc.FetchStates(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetching states: %w", err)
			}

			for _, st := range states {
				fmt.Printf("%s\t%s\n", st.Value, st.Name)
			}
			return nil
		},
	}
}

// filterStates keeps the states whose names match the requested list,
// case-insensitively. An empty request keeps everything.
func filterStates(states []scraper.State, requested []string) []scraper.State {
	if len(requested) == 0 {
		return states
	}
	want := make(map[string]bool, len(requested))
	for _, name := range requested {
		want[strings.ToLower(strings.TrimSpace(name))] = true
	}
	kept := make([]scraper.State, 0, len(requested))
	for _, st := range states {
		if want[strings.ToLower(st.Name)] {
			kept = append(kept, st)
		}
	}
	return kept
}

// printProgress renders detail progress to stderr after each item.
func printProgress(current, total int, label string) {
	fmt.Fprintf(os.Stderr, "\r[%d/%d] %s\x1b[K", current, total, label)
	if current == total {
		fmt.Fprintln(os.Stderr)
	}
}

func printSummary(date string, listings *course.Table, buckets *course.Buckets) {
	fmt.Printf("Snapshot %s: %d courses\n", date, listings.Len())
	for _, name := range course.BucketNames {
		tbl := buckets.Get(name)
		if tbl.Absent() {
			fmt.Printf("  %-8s -\n", name)
			continue
		}
		fmt.Printf("  %-8s %d\n", name, tbl.Len())
	}
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
