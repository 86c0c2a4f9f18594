package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/afiaWhiteprints/esosa/internal/topics"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect the covered-topic history",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every covered topic, oldest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		entries, err := a.history.Topics(cmd.Context())
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No topics covered yet.")
			return nil
		}
		for _, entry := range entries {
			fmt.Printf("%s  %s\n", entry.EpisodeDate, entry.Topic)
		}
		return nil
	},
}

var historyCheckCmd = &cobra.Command{
	Use:   "check <title>",
	Short: "Check a candidate title against the covered history",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		title := strings.Join(args, " ")
		threshold, _ := cmd.Flags().GetFloat64("threshold")

		matches, err := a.history.CheckTopicCovered(cmd.Context(), title, threshold)
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			fmt.Printf("%q does not resemble any covered topic.\n", title)
			return nil
		}
		for _, match := range matches {
			fmt.Printf("similarity %.2f: %q covered on %s\n", match.Similarity, match.Topic, match.EpisodeDate)
		}
		return nil
	},
}

func init() {
	historyCheckCmd.Flags().Float64("threshold", topics.HistoryThreshold, "similarity threshold")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyCheckCmd)
}
