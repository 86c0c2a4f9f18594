package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Inspect stored sessions",
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored sessions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		sessionType, _ := cmd.Flags().GetString("type")
		limit, _ := cmd.Flags().GetInt("limit")

		sessions, err := a.sessions.ListSessions(cmd.Context(), sessionType, limit)
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions stored yet.")
			return nil
		}
		for _, info := range sessions {
			fmt.Printf("%6d  %-15s  %s  %s\n",
				info.ID,
				info.Type,
				info.Timestamp.Format("2006-01-02 15:04"),
				strings.Join(info.Keywords, ", "),
			)
		}
		return nil
	},
}

var sessionsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one stored session as JSON",
	Args:  cobra.ExactArgs(1),
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

		record, sessionType, err := a.sessions.LoadSession(cmd.Context(), id)
		if err != nil {
			return err
		}
		fmt.Printf("Session %d (%s):\n", id, sessionType)
		return printJSON(record)
	},
}

var sessionsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize stored sessions and history size",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		stats, err := a.sessions.UsageStats(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Sessions: %d total\n", stats.TotalSessions)
		for sessionType, count := range stats.SessionsByType {
			fmt.Printf("  %-15s %d\n", sessionType, count)
		}
		fmt.Printf("Topics covered: %d\n", stats.TopicsCovered)
		if stats.LastSession != nil {
			fmt.Printf("Last session: %d (%s) at %s\n",
				stats.LastSession.ID,
				stats.LastSession.Type,
				stats.LastSession.Timestamp.Format("2006-01-02 15:04"),
			)
		}
		return nil
	},
}

func init() {
	sessionsListCmd.Flags().String("type", "", "filter by session type (research, episode, interview_prep)")
	sessionsListCmd.Flags().Int("limit", 20, "max sessions to list")
	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsCmd.AddCommand(sessionsShowCmd)
	sessionsCmd.AddCommand(sessionsStatsCmd)
}
