package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/productdevbook/portprobe/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change stored scan defaults",
	Long:  `Stored defaults apply to every scan unless overridden by a flag. Keys: timeout, pool_size, ports, rate.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print stored defaults",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Store a default",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Remove all stored defaults",
	Args:  cobra.NoArgs,
	RunE:  runConfigReset,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configResetCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := newStore().Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tVALUE")
	for _, key := range config.Keys {
		v, _ := cfg.Get(key)
		if v == "" {
			v = "-"
		}
		fmt.Fprintf(w, "%s\t%s\n", key, v)
	}
	return w.Flush()
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	store := newStore()
	cfg, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Set(args[0], args[1]); err != nil {
		return err
	}
	if err := store.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	v, _ := cfg.Get(args[0])
	fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], v)
	return nil
}

func runConfigReset(cmd *cobra.Command, args []string) error {
	if err := newStore().Save(&config.Config{}); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Config reset.")
	return nil
}
