package cmd

import (
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/productdevbook/portprobe/internal/config"
	"github.com/productdevbook/portprobe/internal/output"
	"github.com/productdevbook/portprobe/internal/procs"
	"github.com/productdevbook/portprobe/internal/scanner"
	"github.com/productdevbook/portprobe/internal/services"
)

var (
	timeout      time.Duration
	poolSize     int
	portsSpec    string
	rateLimit    float64
	outputPath   string
	noProgress   bool
	showProcs    bool
	servicesFile string
)

var scanCmd = &cobra.Command{
	Use:   "scan <host>",
	Short: "Scan a host for open TCP ports",
	Long:  `Probe every candidate TCP port of host and print the open ones in ascending order.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runScan,
}

func init() {
	addScanFlags(scanCmd)
}

func addScanFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.DurationVarP(&timeout, "timeout", "t", scanner.DefaultTimeout, "Per-connection deadline")
	f.IntVarP(&poolSize, "pool-size", "c", scanner.DefaultPoolSize, "Maximum concurrent connection attempts")
	f.StringVarP(&portsSpec, "ports", "p", "all", "Ports to scan (e.g. 22,80,8000-8100)")
	f.Float64Var(&rateLimit, "rate", 0, "Maximum probes per second (0 = unlimited)")
	f.StringVarP(&outputPath, "output", "o", "", "Also write the report to a file (.json, .csv, text otherwise)")
	f.BoolVar(&noProgress, "no-progress", false, "Disable the progress bar")
	f.BoolVar(&showProcs, "show-procs", false, "Show owning processes of open ports when scanning this machine")
	f.StringVar(&servicesFile, "services-file", services.DefaultPath, "Service database merged into the built-in table (empty to disable)")
}

// scanSettings are the effective values after merging flags and config.
type scanSettings struct {
	timeout    time.Duration
	poolSize   int
	rate       float64
	candidates scanner.Candidates
}

// resolveSettings applies flags over stored config over built-in defaults.
func resolveSettings(flags *pflag.FlagSet, cfg *config.Config) (scanSettings, error) {
	s := scanSettings{
		timeout:  timeout,
		poolSize: poolSize,
		rate:     rateLimit,
	}
	spec := portsSpec

	if !flags.Changed("timeout") {
		d, err := cfg.TimeoutDuration()
		if err != nil {
			return s, err
		}
		if d > 0 {
			s.timeout = d
		}
	}
	if !flags.Changed("pool-size") && cfg.PoolSize > 0 {
		s.poolSize = cfg.PoolSize
	}
	if !flags.Changed("rate") && cfg.Rate > 0 {
		s.rate = cfg.Rate
	}
	if !flags.Changed("ports") && cfg.Ports != "" {
		spec = cfg.Ports
	}

	if s.timeout <= 0 {
		return s, fmt.Errorf("timeout must be positive, got %s", s.timeout)
	}
	if s.poolSize < 1 {
		return s, fmt.Errorf("pool size must be at least 1, got %d", s.poolSize)
	}
	if s.rate < 0 {
		return s, fmt.Errorf("rate must not be negative, got %g", s.rate)
	}

	c, err := scanner.ParsePortSpec(spec)
	if err != nil {
		return s, fmt.Errorf("invalid ports spec: %w", err)
	}
	s.candidates = c
	return s, nil
}

func runScan(cmd *cobra.Command, args []string) error {
	host := strings.TrimSpace(args[0])
	if host == "" {
		return errors.New("host must not be empty")
	}

	log := newLogger(cmd)
	defer log.Sync()

	cfg, err := newStore().Load()
	if err != nil {
		log.Warn("ignoring unreadable config", zap.Error(err))
		cfg = &config.Config{}
	}

	settings, err := resolveSettings(cmd.Flags(), cfg)
	if err != nil {
		return err
	}

	registry := services.New()
	if servicesFile != "" {
		if err := registry.LoadFile(servicesFile); err != nil {
			log.Debug("service database not loaded", zap.String("path", servicesFile), zap.Error(err))
		}
	}

	var bar *progressReporter
	if !noProgress && !jsonOutput && isTerminal(cmd.ErrOrStderr()) {
		bar = newProgressReporter(host, cmd.ErrOrStderr())
	}

	opts := scanner.Options{
		Timeout:    settings.timeout,
		PoolSize:   settings.poolSize,
		Rate:       settings.rate,
		Candidates: settings.candidates,
		Services:   registry,
		Logger:     log,
	}
	if bar != nil {
		opts.Progress = bar.update
	}

	s, err := scanner.New(opts)
	if err != nil {
		return fmt.Errorf("failed to start scanner: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bar.start()
	report, err := s.Scan(ctx, host)
	bar.stop()
	if err != nil {
		return err
	}

	if showProcs {
		annotateProcesses(report, log)
	}

	if jsonOutput {
		err = output.WriteJSON(cmd.OutOrStdout(), report)
	} else {
		err = output.WriteText(cmd.OutOrStdout(), report, isTerminal(cmd.OutOrStdout()))
	}
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if outputPath != "" {
		if err := output.WriteFile(outputPath, report); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
	}
	return nil
}

// annotateProcesses fills in owning processes when every scanned address
// belongs to this machine.
func annotateProcesses(report *scanner.Report, log *zap.Logger) {
	for _, a := range report.Addresses {
		if !isLocalAddress(a) {
			log.Warn("--show-procs only applies to local targets", zap.String("address", a))
			return
		}
	}

	owners, err := procs.New().Listening()
	if err != nil {
		log.Warn("failed to list listening sockets", zap.Error(err))
		return
	}

	byPort := procs.ByPort(owners)
	for i, p := range report.Open {
		if o, ok := byPort[p.Port]; ok {
			report.Open[i].Process = o.Process
		}
	}
}

func isLocalAddress(addr string) bool {
	ip := net.ParseIP(strings.SplitN(addr, "%", 2)[0])
	if ip == nil {
		return false
	}
	if ip.IsLoopback() || ip.IsUnspecified() {
		return true
	}

	ifaceAddrs, err := net.InterfaceAddrs()
	if err != nil {
		return false
	}
	for _, a := range ifaceAddrs {
		if n, ok := a.(*net.IPNet); ok && n.IP.Equal(ip) {
			return true
		}
	}
	return false
}
