package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pg-sharding/pgconnstr/pkg/cslog"
	"github.com/pg-sharding/pgconnstr/pkg/parser"
	"github.com/pg-sharding/pgconnstr/pkg/registry"
)

var rootCmd = &cobra.Command{
	Use: "csdump parse `connection string`",
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return cslog.UpdateZeroLogLevel(logLevel)
	},
}

var logLevel string

var parseCmd = &cobra.Command{
	Use:   "parse `connection string`",
	Short: "parse a connection string and dump the normalized config",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := parser.Parse(args[0])
		if err != nil {
			cslog.Zero.Error().Err(err).Msg("failed to parse connection string")
			return err
		}
		return dump(cfg)
	},
}

var registryCmd = &cobra.Command{
	Use:   "registry `config-path`",
	Short: "parse every named connection string in a registry file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		connections, err := registry.Load(args[0])
		if err != nil {
			cslog.Zero.Error().Err(err).Msg("failed to load connection registry")
			return err
		}
		for name, cfg := range connections {
			fmt.Printf("%s:\n", name)
			if err := dump(cfg); err != nil {
				return err
			}
		}
		return nil
	},
}

func dump(cfg any) error {
	repr, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(repr))
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "log level")
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(registryCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
