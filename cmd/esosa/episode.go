package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/afiaWhiteprints/esosa/internal/domain"
	"github.com/afiaWhiteprints/esosa/internal/episode"
)

var episodeCmd = &cobra.Command{
	Use:   "episode",
	Short: "Generate full episode content for a topic",
	Long: `Generate an outline, talking points, script, show notes, intro/outro
and social copy for an episode. The topic comes from --topic, or from a
fresh research session when --keywords is set instead.

Examples:
  esosa episode --topic "Why solo podcasts fail" --duration 25
  esosa episode --keywords "creator economy" --niche "indie creators" --publish`,
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		keywords, _ := cmd.Flags().GetStringSlice("keywords")
		if topic == "" && len(keywords) == 0 {
			return errors.New("either --topic or --keywords is required")
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		duration, _ := cmd.Flags().GetInt("duration")
		hostStyle, _ := cmd.Flags().GetString("style")
		audience, _ := cmd.Flags().GetString("audience")
		publish, _ := cmd.Flags().GetBool("publish")

		req := episode.Request{
			Topic:           topic,
			DurationMinutes: duration,
			HostStyle:       hostStyle,
			TargetAudience:  audience,
			Publish:         publish,
		}
		if topic == "" {
			research := researchRequestFromFlags(cmd, keywords, a)
			req.Research = &research
		}

		content, err := a.episodes.GenerateEpisode(cmd.Context(), req)
		if err != nil {
			return err
		}

		full, _ := cmd.Flags().GetBool("full")
		if full {
			return printJSON(content)
		}
		printEpisodeSummary(content)
		return nil
	},
}

func init() {
	addResearchFlags(episodeCmd)
	episodeCmd.Flags().String("topic", "", "episode topic (skips research)")
	episodeCmd.Flags().Int("duration", 30, "episode length in minutes")
	episodeCmd.Flags().String("style", "conversational", "host style for the script")
	episodeCmd.Flags().String("audience", "", "target audience description")
	episodeCmd.Flags().Bool("full", false, "print the full episode content as JSON")
}

func printEpisodeSummary(content *domain.EpisodeContent) {
	fmt.Printf("Episode: %s (%d minutes)\n\n", content.Outline.Title, content.DurationMinutes)

	if len(content.Outline.Segments) > 0 {
		fmt.Println("Outline:")
		for _, seg := range content.Outline.Segments {
			fmt.Printf("  - %s (%d min)\n", seg.Name, seg.DurationMinutes)
		}
	}

	if len(content.TalkingPoints) > 0 {
		fmt.Printf("\nTalking points: %d\n", len(content.TalkingPoints))
	}
	if content.Script.Err != "" {
		fmt.Printf("\nScript: %s\n", content.Script.Err)
	} else {
		fmt.Printf("\nScript: %d sections\n", len(content.Script.Sections))
	}
	fmt.Println("\nUse --full to print the complete content as JSON.")
}
