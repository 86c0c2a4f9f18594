package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/afiaWhiteprints/esosa/internal/domain"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Prepare questions and notes for a guest interview",
	Long: `Generate interview questions, host prep notes and an intro/outro for
a guest. With --keywords set, a background research session is attached.

Examples:
  esosa interview --guest "Ada Umeh" --expertise "audio engineering" --topic "studio acoustics"
  esosa interview --guest "Sam Ide" --keywords "newsletter growth" --length 45`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("guest")
		if name == "" {
			return errors.New("--guest is required")
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		expertise, _ := cmd.Flags().GetString("expertise")
		background, _ := cmd.Flags().GetString("background")
		topic, _ := cmd.Flags().GetString("topic")
		length, _ := cmd.Flags().GetInt("length")
		keywords, _ := cmd.Flags().GetStringSlice("keywords")

		guest := domain.GuestInfo{
			Name:       name,
			Expertise:  expertise,
			Background: background,
		}

		var researchReq *domain.ResearchRequest
		if len(keywords) > 0 {
			req := researchRequestFromFlags(cmd, keywords, a)
			researchReq = &req
		}

		prep, err := a.episodes.PrepareInterview(cmd.Context(), guest, topic, length, researchReq)
		if err != nil {
			return err
		}

		full, _ := cmd.Flags().GetBool("full")
		if full {
			return printJSON(prep)
		}

		fmt.Printf("Interview prep for %s, topic: %s (%d minutes)\n\nQuestions:\n", prep.Guest.Name, prep.Topic, prep.LengthMinutes)
		for i, q := range prep.Questions {
			fmt.Printf("%2d. %s\n", i+1, q)
		}
		if len(prep.PrepNotes) > 0 {
			fmt.Println("\nPrep notes:")
			for _, note := range prep.PrepNotes {
				fmt.Printf("  - %s\n", note)
			}
		}
		return nil
	},
}

func init() {
	addResearchFlags(interviewCmd)
	interviewCmd.Flags().String("guest", "", "guest name")
	interviewCmd.Flags().String("expertise", "", "guest's area of expertise")
	interviewCmd.Flags().String("background", "", "guest background notes")
	interviewCmd.Flags().String("topic", "", "interview topic (defaults to the guest's expertise)")
	interviewCmd.Flags().Int("length", 30, "interview length in minutes")
	interviewCmd.Flags().Bool("full", false, "print the full prep bundle as JSON")
}
