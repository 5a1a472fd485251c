package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"karma-server/internal/store"
)

var callsOpts struct {
	limit  int
	offset int
	active bool
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dashboard statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		stats, err := s.GetStats(cmd.Context())
		if err != nil {
			return err
		}
		if globalOpts.jsonOutput {
			return printJSON(stats)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "Total calls:\t%d\n", stats.TotalCalls)
		fmt.Fprintf(w, "Active calls:\t%d\n", stats.ActiveCalls)
		fmt.Fprintf(w, "Completed calls:\t%d\n", stats.CompletedCalls)
		fmt.Fprintf(w, "Average duration:\t%ds\n", stats.AvgDurationSeconds)
		fmt.Fprintf(w, "Time wasted:\t%ds\n", stats.TotalTimeWastedSeconds)
		fmt.Fprintf(w, "Intel extracted:\t%d\n", stats.IntelExtracted)
		fmt.Fprintf(w, "Success rate:\t%.1f%%\n", stats.SuccessRate)
		fmt.Fprintf(w, "Calls today:\t%d\n", stats.CallsToday)
		fmt.Fprintf(w, "Last 7 days:\t%v\n", stats.CallsThisWeek)
		return w.Flush()
	},
}

var callsCmd = &cobra.Command{
	Use:   "calls",
	Short: "List recent calls",
	Long: `List recent calls, newest first.

Examples:
  karmactl calls --limit 20
  karmactl calls --active --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		var calls []store.Call
		if callsOpts.active {
			calls, err = s.ListActiveCalls(cmd.Context())
			if err != nil {
				return err
			}
		} else {
			summaries, err := s.ListCalls(cmd.Context(), callsOpts.limit, callsOpts.offset)
			if err != nil {
				return err
			}
			if globalOpts.jsonOutput {
				return printJSON(summaries)
			}
			for _, c := range summaries {
				calls = append(calls, c.Call)
			}
		}
		if globalOpts.jsonOutput {
			return printJSON(calls)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCALLER\tSTARTED\tSTATUS\tDURATION\tTHREAT")
		for _, c := range calls {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%ds\t%s\n", c.ID, c.CallerNumber, c.StartTime, c.Status, c.DurationSeconds, c.ThreatLevel)
		}
		return w.Flush()
	},
}

var transcriptCmd = &cobra.Command{
	Use:   "transcript <call-id>",
	Short: "Print a call transcript and its extracted intel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		callID := args[0]
		call, err := s.GetCall(ctx, callID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("call %s not found", callID)
			}
			return err
		}
		messages, err := s.GetTranscript(ctx, callID)
		if err != nil {
			return err
		}
		intel, err := s.GetIntel(ctx, callID)
		if err != nil {
			return err
		}

		if globalOpts.jsonOutput {
			return printJSON(map[string]any{
				"call":       call,
				"transcript": messages,
				"intel":      intel,
			})
		}

		fmt.Printf("Call %s from %s (%s)\n\n", call.ID, call.CallerNumber, call.Status)
		for _, m := range messages {
			fmt.Printf("[%s] %s: %s\n", m.Timestamp, strings.ToUpper(m.Role), m.Content)
		}
		if len(intel) > 0 {
			fmt.Println("\nIntel:")
			for _, i := range intel {
				fmt.Printf("  %s = %s (%.2f)\n", i.FieldName, i.FieldValue, i.Confidence)
			}
		}
		if call.Summary != nil {
			fmt.Printf("\nSummary:\n%s\n", *call.Summary)
		}
		return nil
	},
}

func init() {
	callsCmd.Flags().IntVar(&callsOpts.limit, "limit", 50, "maximum calls to list")
	callsCmd.Flags().IntVar(&callsOpts.offset, "offset", 0, "calls to skip")
	callsCmd.Flags().BoolVar(&callsOpts.active, "active", false, "only list calls in progress")
}
