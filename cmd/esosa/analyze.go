package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/afiaWhiteprints/esosa/internal/analysis"
	"github.com/afiaWhiteprints/esosa/internal/domain"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <session-id>",
	Short: "Run text analysis over a stored session's sample content",
	Long: `Extract keywords, sentiment patterns, content gaps and trending
hashtags from the sample items captured in a stored research session.

Example:
  esosa analyze 42 --min-freq 2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid session id %q", args[0])
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		record, _, err := a.sessions.LoadSession(cmd.Context(), id)
		if err != nil {
			return err
		}

		var items []domain.ContentItem
		for _, result := range record.PlatformResults {
			items = append(items, result.SampleItems...)
		}
		if len(items) == 0 {
			return fmt.Errorf("session %d holds no sample content to analyze", id)
		}

		minFreq, _ := cmd.Flags().GetInt("min-freq")

		report := struct {
			Keywords  []analysis.Keyword        `json:"keywords"`
			Sentiment analysis.SentimentSummary `json:"sentiment"`
			Gaps      analysis.GapReport        `json:"content_gaps"`
			Hashtags  []analysis.HashtagTrend   `json:"trending_hashtags"`
		}{
			Keywords:  analysis.ExtractKeywords(items, minFreq),
			Sentiment: analysis.SentimentPatterns(items),
			Gaps:      analysis.ContentGaps(items, record.SearchKeywords),
			Hashtags:  analysis.TrendingHashtags(items, 10),
		}
		return printJSON(report)
	},
}

func init() {
	analyzeCmd.Flags().Int("min-freq", 2, "minimum frequency for extracted keywords")
	rootCmd.AddCommand(analyzeCmd)
}
