// relay receives webhooks, reshapes their JSON payloads with collection
// rules and forwards them to configured targets.
//
// Usage:
//
//	relay                               serve, reading $RELAY_CONFIG or relay.yaml
//	relay -c routes.yaml                serve with another config file
//	relay check-config                  validate the config and list routes
//	relay hash-token <token> [driver]   print a token_hash (argon2id or bcrypt)
//	relay seal-key                      print a random seal_key
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-laravel-relay/relay"
)

var (
	version    = "dev"
	configPath string
)

func main() {
	_ = godotenv.Load()

	// Route configs may name the default macros, so they are registered
	// before any config is loaded.
	relay.RegisterDefaultMacros()

	defaultConfig := os.Getenv("RELAY_CONFIG")
	if defaultConfig == "" {
		defaultConfig = "relay.yaml"
	}

	rootCmd := &cobra.Command{
		Use:   "relay",
		Short: "Reshape and forward webhooks",
		Long: `relay listens on POST /hooks/{route}, filters and reshapes each JSON
payload with the route's rules and forwards the result to the route target.`,
		Version:      version,
		SilenceUsage: true,
		RunE:         runServe,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfig, "Path to the YAML config file")

	rootCmd.AddCommand(checkConfigCmd())
	rootCmd.AddCommand(hashTokenCmd())
	rootCmd.AddCommand(sealKeyCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
