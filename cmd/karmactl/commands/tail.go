package commands

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"karma-server/internal/clients/kafka"
)

var tailOpts struct {
	brokers string
	topic   string
	group   string
	types   []string
}

var tailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Follow call events from Kafka",
	Long: `Follow call events the server publishes to Kafka.

Examples:
  karmactl tail --brokers localhost:9092
  karmactl tail --type call_started --type call_ended --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if tailOpts.brokers == "" {
			return errors.New("no brokers configured, set --brokers or KAFKA_BROKERS")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		consumer := kafka.NewConsumer(kafka.ConsumerConfig{
			Brokers: strings.Split(tailOpts.brokers, ","),
			Topic:   tailOpts.topic,
			GroupID: tailOpts.group,
		}, newLogger())
		defer consumer.Close()

		wanted := make(map[string]bool, len(tailOpts.types))
		for _, t := range tailOpts.types {
			wanted[t] = true
		}

		err := consumer.ConsumeEvents(ctx, func(_ context.Context, event kafka.EventMessage) error {
			if len(wanted) > 0 && !wanted[event.Type] {
				return nil
			}
			if globalOpts.jsonOutput {
				return printJSON(event)
			}
			fmt.Printf("%s %-16s %s %v\n", event.Timestamp, event.Type, event.CallID, event.Data)
			return nil
		})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func init() {
	tailCmd.Flags().StringVar(&tailOpts.brokers, "brokers", "", "comma separated Kafka brokers (env KAFKA_BROKERS)")
	tailCmd.Flags().StringVar(&tailOpts.topic, "topic", "", "event topic (env KAFKA_TOPIC)")
	tailCmd.Flags().StringVar(&tailOpts.group, "group", "karmactl", "consumer group id")
	tailCmd.Flags().StringSliceVar(&tailOpts.types, "type", nil, "only print events of this type, repeatable")
}
