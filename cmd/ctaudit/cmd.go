package main

import (
	"fmt"
	"os"
	"regexp"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ericlagergren/ctmask/internal/audit"
)

type scanFlags struct {
	match         string
	allowPrologue bool
	verbose       bool
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ctaudit",
		Short:         "Audit compiled code for conditional branches",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newScanCmd())
	return root
}

func newScanCmd() *cobra.Command {
	var flags scanFlags
	cmd := &cobra.Command{
		Use:   "scan <binary>",
		Short: "Report conditional branches in the matching functions of an ELF binary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args[0], flags)
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&flags.match, "match", audit.DefaultMatch,
		"regular expression selecting the functions to audit")
	fs.BoolVar(&flags.allowPrologue, "allow-prologue", true,
		"ignore the Go stack-growth check at the start of a function")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false,
		"enable debug logging")
	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level.SetLevel(zapcore.DebugLevel)
	}
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build(zap.AddStacktrace(zapcore.ErrorLevel))
}

func runScan(cmd *cobra.Command, path string, flags scanFlags) error {
	re, err := regexp.Compile(flags.match)
	if err != nil {
		return errors.Wrap(err, "invalid --match")
	}
	log, err := newLogger(flags.verbose)
	if err != nil {
		return errors.Wrap(err, "creating logger")
	}
	defer log.Sync() //nolint:errcheck

	f, err := os.Open(path)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()

	report, err := audit.ScanELF(f, audit.Options{
		Match:         re,
		AllowPrologue: flags.allowPrologue,
		Logger:        log.With(zap.String("binary", path)),
	})
	if err != nil {
		return errors.Wrapf(err, "auditing %s", path)
	}
	return printReport(cmd, report)
}

func printReport(cmd *cobra.Command, report *audit.Report) error {
	out := cmd.OutOrStdout()
	if len(report.Symbols) == 0 {
		return errors.New("no functions matched")
	}
	for _, f := range report.Findings {
		fmt.Fprintln(out, f)
	}
	if !report.Clean() {
		return errors.Errorf("%d conditional branches in %d functions",
			len(report.Findings), len(report.Symbols))
	}
	fmt.Fprintf(out, "%s: %d functions, no conditional branches\n",
		report.Arch, len(report.Symbols))
	return nil
}
