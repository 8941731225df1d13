package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/liamg/sweep/scan"
	"github.com/liamg/sweep/version"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// ArgumentError is returned for a missing or malformed command line flag.
type ArgumentError struct {
	Flag   string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("Invalid argument --%s: %s", e.Flag, e.Reason)
}

type options struct {
	debug            bool
	versionRequested bool
	host             string
	port             string
	timeoutMS        int
	parallelism      int
	probe            scan.ProbeFunc
}

func defaultOptions() *options {
	return &options{
		timeoutMS:   int(scan.DefaultTimeout / time.Millisecond),
		parallelism: scan.DefaultWorkers,
	}
}

func newRootCommand(opts *options) *cobra.Command {

	rootCmd := &cobra.Command{
		Use:           "sweep",
		Short:         "sweep is a TCP port scanner",
		Long:          `A TCP connect scanner which sweeps the whole port space of a host using a fixed pool of workers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.versionRequested, "version", "", opts.versionRequested, "Output version information and exit")
	rootCmd.PersistentFlags().BoolVarP(&opts.debug, "verbose", "v", opts.debug, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&opts.host, "host", "", opts.host, "Host to scan (required)")
	rootCmd.PersistentFlags().StringVarP(&opts.port, "port", "p", opts.port, "Single port to scan, 0-65535. The whole port range is scanned if omitted")
	rootCmd.PersistentFlags().IntVarP(&opts.timeoutMS, "timeout-ms", "t", opts.timeoutMS, "Connection timeout per port in MS")
	rootCmd.PersistentFlags().IntVarP(&opts.parallelism, "workers", "w", opts.parallelism, "Parallel routines to scan on")

	return rootCmd
}

func run(cmd *cobra.Command, opts *options) error {

	out := cmd.OutOrStdout()

	if opts.versionRequested {
		v := version.Version
		if v == "" {
			v = "development version"
		}
		fmt.Fprintf(out, "sweep %s\n", v)
		return nil
	}

	if opts.debug {
		log.SetLevel(log.DebugLevel)
	}

	host, port, hasPort, err := parseArguments(opts.host, opts.port, cmd.Flags().Changed("port"))
	if err != nil {
		return err
	}

	if opts.parallelism <= 0 {
		return &scan.InvalidConcurrencyError{Workers: opts.parallelism}
	}

	if opts.timeoutMS <= 0 {
		return &ArgumentError{Flag: "timeout-ms", Reason: "must be greater than zero"}
	}

	if hasPort {
		fmt.Fprintf(out, "Scanning host: %s port: %d\n", host, port)
	} else {
		fmt.Fprintf(out, "Scanning host: %s\n", host)
	}

	startTime := time.Now()

	target, err := scan.Resolve(host)
	if err != nil {
		return err
	}

	log.Debugf("Resolved %s to %s", host, target.IP)
	if target.MAC != "" {
		log.Debugf("Found %s in arp cache: %s %s", target.IP, target.MAC, target.Manufacturer)
	}

	req := scan.NewRequest(target.IP)
	if hasPort {
		req = scan.NewPortRequest(target.IP, port)
	}

	scanner := scan.NewConnectScanner(
		time.Millisecond*time.Duration(opts.timeoutMS),
		opts.parallelism,
		scan.ReporterFunc(func(p int) {
			fmt.Fprintf(out, "Port: %d is open\n", p)
		}),
	).WithProbe(opts.probe)

	outcome, err := scanner.Scan(req)
	if err != nil {
		return err
	}

	if hasPort && !outcome.IsOpen(int(port)) {
		fmt.Fprintf(out, "Port: %d is closed\n", port)
	}

	if outcome.Timed {
		fmt.Fprintf(out, "Time elapsed: %dms\n", time.Since(startTime).Milliseconds())
	}

	log.Debugf("%s", outcome)

	return nil
}

func parseArguments(host string, portStr string, portSet bool) (string, uint16, bool, error) {

	host = strings.TrimSpace(host)
	if host == "" {
		return "", 0, false, &ArgumentError{Flag: "host", Reason: "a host is required"}
	}

	if !portSet {
		return host, 0, false, nil
	}

	port, err := strconv.ParseUint(strings.TrimSpace(portStr), 10, 16)
	if err != nil {
		return "", 0, false, &ArgumentError{Flag: "port", Reason: fmt.Sprintf("'%s' is not a valid port", portStr)}
	}

	return host, uint16(port), true, nil
}

func Execute() {
	if err := execute(os.Args[1:], os.Stdout); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func execute(args []string, out io.Writer) error {
	return executeWith(defaultOptions(), args, out)
}

func executeWith(opts *options, args []string, out io.Writer) error {
	rootCmd := newRootCommand(opts)
	rootCmd.SetArgs(args)
	rootCmd.SetOutput(out)
	return rootCmd.Execute()
}
