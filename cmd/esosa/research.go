package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/afiaWhiteprints/esosa/internal/domain"
	"github.com/afiaWhiteprints/esosa/internal/research"
)

var researchCmd = &cobra.Command{
	Use:   "research",
	Short: "Run a research session across the enabled platforms",
	Long: `Search the configured platforms for the given keywords, extract and
rank topic suggestions with AI, and store the session.

Examples:
  esosa research --keywords "indie hacking,bootstrapping" --niche "startup stories"
  esosa research --keywords ai --platforms twitter,reddit --max-items 30 --publish`,
	RunE: func(cmd *cobra.Command, args []string) error {
		keywords, _ := cmd.Flags().GetStringSlice("keywords")
		if len(keywords) == 0 {
			return errors.New("at least one --keywords value is required")
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		req := researchRequestFromFlags(cmd, keywords, a)

		record, err := a.research.Research(cmd.Context(), req)
		if err != nil {
			var allFailed *research.AllPlatformsFailedError
			if errors.As(err, &allFailed) {
				for p, msg := range allFailed.Errors {
					a.logger.Error("platform failed", "platform", p, "error", msg)
				}
			}
			return err
		}

		full, _ := cmd.Flags().GetBool("full")
		if full {
			return printJSON(record)
		}
		printResearchSummary(record)
		return nil
	},
}

func init() {
	addResearchFlags(researchCmd)
	researchCmd.Flags().Bool("full", false, "print the full session record as JSON")
}

// addResearchFlags registers the flags shared by every command that can
// trigger a research session.
func addResearchFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("keywords", nil, "keywords to search for")
	cmd.Flags().String("niche", "", "podcast niche for AI relevance scoring")
	cmd.Flags().String("description", "", "podcast description for AI context")
	cmd.Flags().Int("days-back", 0, "how many days of content to search (default from config)")
	cmd.Flags().StringSlice("platforms", []string{"twitter", "tiktok", "threads", "reddit"}, "platforms to search")
	cmd.Flags().Int("max-items", 0, "max items per platform (default from config)")
	cmd.Flags().Bool("random-keywords", false, "sample a random keyword subset per platform")
	cmd.Flags().Int("random-keyword-count", 3, "how many keywords to sample with --random-keywords")
	cmd.Flags().StringSlice("regions", nil, "TikTok region codes (default US)")
	cmd.Flags().Bool("publish", false, "publish the completed session to RabbitMQ")
}

func researchRequestFromFlags(cmd *cobra.Command, keywords []string, a *app) domain.ResearchRequest {
	niche, _ := cmd.Flags().GetString("niche")
	description, _ := cmd.Flags().GetString("description")
	daysBack, _ := cmd.Flags().GetInt("days-back")
	platforms, _ := cmd.Flags().GetStringSlice("platforms")
	maxItems, _ := cmd.Flags().GetInt("max-items")
	randomKeywords, _ := cmd.Flags().GetBool("random-keywords")
	randomCount, _ := cmd.Flags().GetInt("random-keyword-count")
	regions, _ := cmd.Flags().GetStringSlice("regions")
	publish, _ := cmd.Flags().GetBool("publish")

	if daysBack <= 0 {
		daysBack = a.cfg.Research.DaysBack
	}
	if maxItems <= 0 {
		maxItems = a.cfg.Research.MaxItems
	}

	return researchRequest(keywords, niche, description, daysBack, platforms, maxItems, randomKeywords, randomCount, regions, publish)
}

func printResearchSummary(record *domain.SessionRecord) {
	fmt.Printf("Platforms: %d attempted, %d succeeded\n",
		len(record.PlatformsAttempted), len(record.PlatformsSucceeded))
	for p, msg := range record.PlatformErrors {
		fmt.Printf("  %s failed: %s\n", p, msg)
	}

	fmt.Printf("\nRanked topics (%d):\n", len(record.RankedTopics))
	for i, topic := range record.RankedTopics {
		fmt.Printf("%2d. [%.2f] %s (%s)\n", i+1, topic.UnifiedScore, topic.Title, topic.SourcePlatform)
	}

	for _, warning := range record.TopicWarnings {
		fmt.Printf("\nWarning: top topic resembles %q from %s (similarity %.2f)\n",
			warning.Topic, warning.EpisodeDate, warning.Similarity)
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
