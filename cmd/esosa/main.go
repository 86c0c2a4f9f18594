package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "esosa",
	Short: "Esosa - podcast research and content assistant",
	Long: `Esosa researches trending podcast topics across Twitter, TikTok,
Threads and Reddit, ranks them with AI analysis, and generates episode
content from the winners.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to config file")

	rootCmd.AddCommand(researchCmd)
	rootCmd.AddCommand(episodeCmd)
	rootCmd.AddCommand(interviewCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(sessionsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
