// Package main provides the karmactl operator CLI.
//
// Usage:
//
//	karmactl [flags] <command> [args]
//
// Commands:
//
//	stats       - Dashboard statistics from the call store
//	calls       - Recent calls with transcript and intel counts
//	transcript  - Full transcript and extracted intel of one call
//	classify    - Run the voice classifier against a WAV file
//	tail        - Follow call events published to Kafka
//
// Configuration:
//
//	Flags default to the same environment variables the server reads
//	(DB_DRIVER, DB_DSN, CLASSIFIER_URL, KAFKA_BROKERS, KAFKA_TOPIC).
//	env.local is loaded outside production.
package main

import (
	"fmt"
	"os"

	"karma-server/cmd/karmactl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
