package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-laravel-relay/relay"
)

func checkConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-config",
		Short: "Validate the config file and list its routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "config ok: port %d, %d route(s)\n", cfg.Server.Port, len(cfg.Routes))
			for _, r := range cfg.Routes {
				var flags []string
				if r.TokenHash != "" {
					flags = append(flags, "token")
				}
				if r.SealKey != "" {
					flags = append(flags, "sealed")
				}
				if len(r.Macros) > 0 {
					flags = append(flags, "macros="+strings.Join(r.Macros, ","))
				}
				fmt.Fprintf(out, "  %-20s -> %s %s\n", r.Name, r.Target, strings.Join(flags, " "))
			}
			return nil
		},
	}
}

func hashTokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-token <token> [argon2id|bcrypt]",
		Short: "Hash a route token for the token_hash setting",
		Long: `Hash a route token for the token_hash setting of a route.

Examples:
  # Argon2id (default)
  relay hash-token s3cret

  # bcrypt
  relay hash-token s3cret bcrypt`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			driver := relay.TokenArgon2id
			if len(args) > 1 {
				driver = relay.TokenDriver(args[1])
			}
			hash, err := relay.HashToken(args[0], driver)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Hash: %s\n", hash)
			fmt.Fprintln(out, "\nAdd this to your relay.yaml route:")
			fmt.Fprintf(out, "    token_hash: %q\n", hash)
			return nil
		},
	}
}

func sealKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seal-key",
		Short: "Generate a random AES-256 seal_key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := relay.GenerateSealKey()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Seal key: %s\n", key)
			fmt.Fprintln(out, "\nAdd this to your relay.yaml route:")
			fmt.Fprintf(out, "    seal_key: %q\n", key)
			return nil
		},
	}
}
