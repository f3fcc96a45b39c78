package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joescharf/whatsnew/internal/changelog"
	"github.com/joescharf/whatsnew/internal/github"
	"github.com/joescharf/whatsnew/internal/models"
	"github.com/joescharf/whatsnew/internal/output"
	"github.com/joescharf/whatsnew/internal/report"
)

var (
	generateRepo   string
	generateDays   int
	generateOutput string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a what's-new report from recently merged PRs",
	Long: `Fetch pull requests merged within the window, drop internal work,
classify the rest, and write the grouped Markdown report.

Requires the gh CLI to be installed and authenticated.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return generateRun()
	},
}

func init() {
	generateCmd.Flags().StringVar(&generateRepo, "repo", "", "GitHub repository as owner/name (default from config)")
	generateCmd.Flags().IntVar(&generateDays, "days", 0, "Window size in days (default from config)")
	generateCmd.Flags().StringVar(&generateOutput, "output", "", "Report path, or - for stdout (default from config)")
	rootCmd.AddCommand(generateCmd)
}

func generateRun() error {
	repo := generateRepo
	if repo == "" {
		repo = viper.GetString("github.repo")
	}
	if repo == "" {
		return fmt.Errorf("no repository specified (use --repo or set github.repo in config)")
	}

	days := generateDays
	if days <= 0 {
		days = viper.GetInt("window_days")
	}

	outPath := generateOutput
	if outPath == "" {
		outPath = viper.GetString("output_path")
	}

	now := time.Now()
	since := now.AddDate(0, 0, -days)

	ui.VerboseLog("Window: %s to %s", since.Format("2006-01-02"), now.Format("2006-01-02"))
	ui.Info("Fetching PRs merged in %s over the last %d days...", output.Cyan(repo), days)

	client := github.NewClient()
	changes, err := client.MergedSince(repo, since)
	if err != nil {
		return fmt.Errorf("fetch merged PRs: %w", err)
	}

	classified := changelog.Classify(changes)
	grouped := changelog.Group(classified)

	ui.Success("%d merged PRs fetched, %d user-facing", len(changes), len(classified))
	table := ui.Table([]string{"Category", "Count"})
	for _, cat := range models.Categories {
		_ = table.Append([]string{output.CategoryColor(cat), fmt.Sprintf("%d", len(grouped[cat]))})
	}
	_ = table.Render()

	window := report.Window{Start: since, End: now}
	doc := report.Render(grouped, window, now)

	if dryRun {
		ui.DryRunMsg("Would write report to %s", outPath)
		return nil
	}

	if outPath == "-" {
		fmt.Fprint(ui.Out, doc)
		return nil
	}

	if err := os.WriteFile(outPath, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	ui.Success("Report written to %s", outPath)
	return nil
}
