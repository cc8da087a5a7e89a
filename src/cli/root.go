// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/x509-keygrip/src/config"
	"github.com/H0llyW00dzZ/x509-keygrip/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/x509-keygrip/src/internal/helper/posix"
	x509certs "github.com/H0llyW00dzZ/x509-keygrip/src/internal/x509/certs"
	x509keyinfo "github.com/H0llyW00dzZ/x509-keygrip/src/internal/x509/keyinfo"
	x509keyutil "github.com/H0llyW00dzZ/x509-keygrip/src/internal/x509/keyutil"
	"github.com/H0llyW00dzZ/x509-keygrip/src/logger"
)

var (
	// ErrInputFileRequired is returned when the root command runs without -f.
	ErrInputFileRequired = errors.New("cli: input certificate file is required (use -f)")

	// ErrNoKeyExtracted is returned when no input certificate yielded an RSA key.
	ErrNoKeyExtracted = errors.New("cli: no RSA public key extracted")
)

// debugSetter is implemented by loggers with a debug level.
type debugSetter interface {
	SetDebug(enabled bool)
}

// options holds flag values shared by all commands.
type options struct {
	inputFile  string
	outputFile string
	format     string
	scheme     string
	provider   string
	configFile string
	debug      bool
}

// runtime is what a command needs after flags and configuration are merged.
type runtime struct {
	cfg       *config.Config
	extractor *x509keyutil.Extractor
	scheme    x509keyutil.Scheme
	format    x509keyinfo.Format
}

// Execute runs the x509-keygrip command line with os.Args.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	return NewCommand(version, log).ExecuteContext(ctx)
}

// NewCommand builds the root command and its subcommands.
func NewCommand(version string, log logger.Logger) *cobra.Command {
	if log == nil {
		log = logger.NewCLILogger()
	}
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           posix.ExecutableName("x509-keygrip") + " -f CERT [FLAGS]",
		Short:         "Extract RSA public keys and keygrips from X.509 certificates",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(cmd, opts, log)
		},
	}

	rootCmd.Flags().StringVarP(&opts.inputFile, "file", "f", "", "input certificate file (PEM, DER or PKCS7)")

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&opts.outputFile, "output", "o", "", "output to OUTPUT_FILE (default: stdout)")
	pf.StringVar(&opts.format, "format", "", "output format: text, json, table, pem or ssh")
	pf.StringVar(&opts.scheme, "scheme", "", "keygrip scheme: canonical or libgcrypt")
	pf.StringVar(&opts.provider, "provider", "", "key provider: x509 or raw (default: build default)")
	pf.StringVar(&opts.configFile, "config", "", "path to configuration file (JSON or YAML)")
	pf.BoolVar(&opts.debug, "debug", false, "enable debug logging on stderr")

	rootCmd.AddCommand(newTokenCommand(opts, log))

	return rootCmd
}

// prepare loads configuration and lets explicitly set flags override it.
func prepare(cmd *cobra.Command, opts *options, log logger.Logger) (*runtime, error) {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = opts.format
	}
	if flags.Changed("scheme") {
		cfg.Keygrip.Scheme = opts.scheme
	}
	if flags.Changed("provider") {
		cfg.Extractor.Provider = opts.provider
	}
	if flags.Changed("debug") {
		cfg.Log.Debug = opts.debug
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if d, ok := log.(debugSetter); ok {
		d.SetDebug(cfg.Log.Debug)
	}

	provider, _ := cfg.KeyProvider()
	scheme, _ := cfg.Scheme()
	format, _ := cfg.Format()

	log.Debugf("using %s provider, %s keygrip, %s output", provider.Name(), scheme, format)

	return &runtime{
		cfg: cfg,
		extractor: x509keyutil.New(
			x509keyutil.WithProvider(provider),
			x509keyutil.WithLogger(log),
		),
		scheme: scheme,
		format: format,
	}, nil
}

func runFile(cmd *cobra.Command, opts *options, log logger.Logger) error {
	if opts.inputFile == "" {
		return ErrInputFileRequired
	}

	rt, err := prepare(cmd, opts, log)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(opts.inputFile)
	if err != nil {
		return fmt.Errorf("error reading input file: %w", err)
	}

	ders, err := x509certs.New().DecodeDER(data)
	if err != nil {
		return fmt.Errorf("error decoding certificate: %w", err)
	}

	ctx := cmd.Context()
	reports := make([]x509keyinfo.Report, 0, len(ders))
	for i, der := range ders {
		if err := ctx.Err(); err != nil {
			return err
		}
		source := opts.inputFile
		if len(ders) > 1 {
			source = fmt.Sprintf("%s[%d]", opts.inputFile, i)
		}
		reports = append(reports, x509keyinfo.Build(source, der, rt.extractor, rt.scheme))
	}

	if err := writeReports(cmd.OutOrStdout(), opts.outputFile, rt.format, reports); err != nil {
		return err
	}

	for _, r := range reports {
		if r.OK() {
			return nil
		}
	}
	return fmt.Errorf("%w: %w", ErrNoKeyExtracted, reports[0].Err)
}

// writeReports renders to outputFile when set, otherwise to stdout.
func writeReports(stdout io.Writer, outputFile string, format x509keyinfo.Format, reports []x509keyinfo.Report) error {
	if outputFile == "" {
		return x509keyinfo.Render(stdout, format, reports)
	}

	buf := gc.Default.Get()
	defer gc.Default.Put(buf)

	if err := x509keyinfo.Render(buf, format, reports); err != nil {
		return err
	}
	if err := os.WriteFile(outputFile, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("error writing to output file: %w", err)
	}
	return nil
}
