// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"github.com/spf13/cobra"

	x509keyinfo "github.com/H0llyW00dzZ/x509-keygrip/src/internal/x509/keyinfo"
	x509token "github.com/H0llyW00dzZ/x509-keygrip/src/internal/x509/token"
	"github.com/H0llyW00dzZ/x509-keygrip/src/logger"
)

type tokenOptions struct {
	module      string
	tokenLabel  string
	tokenSerial string
	slot        uint
	pin         string
}

func newTokenCommand(opts *options, log logger.Logger) *cobra.Command {
	topts := &tokenOptions{}

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Report RSA keys and keygrips of certificates on a PKCS#11 token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToken(cmd, opts, topts, log)
		},
	}

	f := cmd.Flags()
	f.StringVar(&topts.module, "module", "", "path to the PKCS#11 module")
	f.StringVar(&topts.tokenLabel, "token-label", "", "select the token by label")
	f.StringVar(&topts.tokenSerial, "token-serial", "", "select the token by serial number")
	f.UintVar(&topts.slot, "slot", 0, "select the slot by ID")
	f.StringVar(&topts.pin, "pin", "", "user PIN (default: $X509_KEYGRIP_PKCS11_PIN)")

	return cmd
}

func runToken(cmd *cobra.Command, opts *options, topts *tokenOptions, log logger.Logger) error {
	rt, err := prepare(cmd, opts, log)
	if err != nil {
		return err
	}

	tc := rt.cfg.Token()
	flags := cmd.Flags()
	if flags.Changed("module") {
		tc.ModulePath = topts.module
	}
	if flags.Changed("token-label") {
		tc.TokenLabel = topts.tokenLabel
	}
	if flags.Changed("token-serial") {
		tc.TokenSerial = topts.tokenSerial
	}
	if flags.Changed("slot") {
		slot := topts.slot
		tc.SlotID = &slot
	}
	if flags.Changed("pin") {
		tc.PIN = topts.pin
	}

	ctx := cmd.Context()
	objects, err := x509token.List(ctx, tc)
	if err != nil {
		return err
	}
	log.Debugf("found %d certificate objects", len(objects))

	reports := make([]x509keyinfo.Report, 0, len(objects))
	for _, obj := range objects {
		if err := ctx.Err(); err != nil {
			return err
		}
		reports = append(reports, x509keyinfo.Build(obj.Source(), obj.DER, rt.extractor, rt.scheme))
	}

	return writeReports(cmd.OutOrStdout(), opts.outputFile, rt.format, reports)
}
