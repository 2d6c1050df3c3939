package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/productdevbook/portprobe/internal/services"
)

var servicesCmd = &cobra.Command{
	Use:   "services [query]",
	Short: "List or search well-known port names",
	Long:  `List the well-known ports table used to name open ports. With a query, fuzzy match service names and print the best matches first.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runServices,
}

func init() {
	servicesCmd.Flags().StringVar(&servicesFile, "services-file", services.DefaultPath, "Service database merged into the built-in table (empty to disable)")
}

func runServices(cmd *cobra.Command, args []string) error {
	log := newLogger(cmd)
	defer log.Sync()

	registry := services.New()
	if servicesFile != "" {
		if err := registry.LoadFile(servicesFile); err != nil {
			log.Debug("service database not loaded", zap.String("path", servicesFile), zap.Error(err))
		}
	}

	var list []services.Service
	if len(args) == 1 {
		list = registry.Search(args[0])
	} else {
		list = registry.All()
	}

	if jsonOutput {
		if list == nil {
			list = []services.Service{}
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	}

	if len(list) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No matching services found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PORT\tSERVICE")
	fmt.Fprintln(w, "----\t-------")
	for _, s := range list {
		fmt.Fprintf(w, "%d\t%s\n", s.Port, s.Name)
	}
	return w.Flush()
}
