package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"karma-server/internal/observability"
	"karma-server/internal/store"
)

var globalOpts struct {
	dbDriver   string
	dbDSN      string
	jsonOutput bool
	verbose    bool
}

var rootCmd = &cobra.Command{
	Use:   "karmactl",
	Short: "Operator CLI for the karma call server",
	Long: `Operator CLI for the karma call server.

Reads the same call store the server writes, probes the voice
classifier and follows the call event stream.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if os.Getenv("GO_ENV") != "production" {
			if err := godotenv.Load("env.local"); err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed to load env.local: %w", err)
			}
		}
		applyEnvDefaults(cmd)
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&globalOpts.dbDriver, "db-driver", "", "database driver, sqlite3 or pgx (env DB_DRIVER)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.dbDSN, "db-dsn", "", "database DSN (env DB_DSN)")
	rootCmd.PersistentFlags().BoolVar(&globalOpts.jsonOutput, "json", false, "print JSON instead of text")
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false, "log client activity to stderr")

	rootCmd.AddCommand(statsCmd, callsCmd, transcriptCmd, classifyCmd, tailCmd)
}

// applyEnvDefaults fills flags the user left unset from the environment.
// env.local may only be loaded after flags are parsed, so this cannot
// happen at flag registration.
func applyEnvDefaults(cmd *cobra.Command) {
	fill := func(name, env, fallback string) {
		f := cmd.Flags().Lookup(name)
		if f == nil || f.Changed {
			return
		}
		v := os.Getenv(env)
		if v == "" {
			v = fallback
		}
		_ = f.Value.Set(v)
	}
	fill("db-driver", "DB_DRIVER", "sqlite3")
	fill("db-dsn", "DB_DSN", "karma.db")
	fill("classifier-url", "CLASSIFIER_URL", "http://localhost:8000")
	fill("brokers", "KAFKA_BROKERS", "")
	fill("topic", "KAFKA_TOPIC", "call-events")
}

func newLogger() *observability.Logger {
	if globalOpts.verbose {
		return observability.NewLogger()
	}
	return observability.NewNopLogger()
}

func openStore() (*store.Store, error) {
	s, err := store.New(globalOpts.dbDriver, globalOpts.dbDSN, newLogger())
	if err != nil {
		return nil, fmt.Errorf("failed to open call store: %w", err)
	}
	return s, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
