package cmd

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/productdevbook/portprobe/internal/config"
	"github.com/productdevbook/portprobe/internal/logging"
)

var (
	version    = "0.1.0"
	jsonOutput bool
	verbose    bool
)

// newStore is replaced in tests.
var newStore = config.NewStore

var rootCmd = &cobra.Command{
	Use:   "portprobe <host>",
	Short: "A fast concurrent TCP port prober",
	Long: `portprobe connects to every TCP port of a host with a bounded pool of workers
and reports the ports that accept connections, with their well-known service names.

A short per-connection timeout keeps a full 65536-port sweep fast. Ports that are open
but slow to answer (high latency or filtered paths) can be missed; raise --timeout for
those networks.

To scan a host named like a subcommand (scan, services, config), use
"portprobe scan <host>".`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runScan,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging on stderr")
	addScanFlags(rootCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(servicesCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.Version = version
}

func newLogger(cmd *cobra.Command) *zap.Logger {
	return logging.New(cmd.ErrOrStderr(), verbose)
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
