package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/stayup/internal/cli/styles"
	"github.com/bnema/stayup/internal/domain/entity"
)

var (
	historyJSON bool
	historyMax  int
	pruneKeep   int
)

const defaultHistoryMax = 20

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent activation changes",
	Long: `List the most recent on/off transitions with what caused them:
user commands, the toggle shortcut, screen lock, downloads or a
preference change.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Drop old transitions",
	Args:  cobra.NoArgs,
	RunE:  runHistoryPrune,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyPruneCmd)

	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
	historyCmd.Flags().IntVarP(&historyMax, "max", "n", defaultHistoryMax, "maximum entries to show")
	historyPruneCmd.Flags().IntVar(&pruneKeep, "keep", 0, "transitions to keep (default: journal.keep from config)")
}

// historyEntry is the --json form of a transition.
type historyEntry struct {
	ID      int64     `json:"id"`
	From    string    `json:"from"`
	To      string    `json:"to"`
	Trigger string    `json:"trigger"`
	Scope   string    `json:"scope"`
	At      time.Time `json:"at"`
}

func runHistory(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewHistoryRenderer(app.Theme)

	items, err := app.Journal.Execute(app.Ctx(), historyMax)
	if err != nil {
		return report(renderer.RenderError(err))
	}

	if historyJSON {
		return printJSON(toHistoryEntries(items))
	}
	fmt.Println(renderer.RenderList(items, time.Now()))
	return nil
}

func runHistoryPrune(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewHistoryRenderer(app.Theme)

	keep := pruneKeep
	if keep <= 0 {
		keep = app.Config.Journal.Keep
	}
	removed, err := app.Journal.Prune(app.Ctx(), keep)
	if err != nil {
		return report(renderer.RenderError(err))
	}
	fmt.Println(renderer.RenderPruned(removed, keep))
	return nil
}

func toHistoryEntries(items []*entity.Transition) []historyEntry {
	out := make([]historyEntry, 0, len(items))
	for _, tr := range items {
		out = append(out, historyEntry{
			ID:      tr.ID,
			From:    string(tr.From),
			To:      string(tr.To),
			Trigger: string(tr.Trigger),
			Scope:   string(tr.Scope),
			At:      tr.At,
		})
	}
	return out
}
