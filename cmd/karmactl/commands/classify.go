package commands

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"karma-server/internal/clients/classifier"
	"karma-server/internal/voice/audio"
)

var classifyOpts struct {
	url string
}

var classifyCmd = &cobra.Command{
	Use:   "classify <file.wav>",
	Short: "Classify a recording as human or synthetic speech",
	Long: `Send a WAV recording to the voice classifier and print its verdict.

Input is resampled to the 8kHz telephony rate the live pipeline sends.

Examples:
  karmactl classify caller.wav
  karmactl classify --classifier-url http://classifier:8000 caller.wav --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		pcm, rate, err := audio.UnwrapWAV(raw)
		if err != nil {
			return err
		}
		if rate != audio.TelephonyRate {
			if pcm, err = audio.Resample(pcm, rate, audio.TelephonyRate); err != nil {
				return err
			}
		}

		client := classifier.NewClient(classifyOpts.url, newLogger())
		result, err := client.Predict(cmd.Context(), audio.WrapWAV(pcm, audio.TelephonyRate))
		if err != nil {
			return err
		}
		if globalOpts.jsonOutput {
			return printJSON(result)
		}

		fmt.Printf("%s (confidence %.2f)\n", result.Label, result.Confidence)
		labels := make([]string, 0, len(result.Probabilities))
		for l := range result.Probabilities {
			labels = append(labels, l)
		}
		sort.Strings(labels)
		for _, l := range labels {
			fmt.Printf("  %-12s %.3f\n", l, result.Probabilities[l])
		}
		return nil
	},
}

func init() {
	classifyCmd.Flags().StringVar(&classifyOpts.url, "classifier-url", "", "classifier base URL (env CLASSIFIER_URL)")
}
