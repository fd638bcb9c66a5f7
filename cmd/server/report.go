package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"haccp-ledger/internal/ledger"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the compliance summary as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		_, logger, l, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer logger.Sync()

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(l.Stats(ctx))
	},
}

var exportFormat, exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump every collection and the audit trail",
	Long: `Writes a point-in-time snapshot of hazards, CCPs, ISO standards,
supporting records and the audit log for hand-off to external auditors.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		_, logger, l, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer logger.Sync()

		if exportOutput == "" || exportOutput == "-" {
			return ledger.WriteSnapshot(cmd.OutOrStdout(), l.Snapshot(ctx), exportFormat)
		}
		f, err := os.Create(exportOutput)
		if err != nil {
			return err
		}
		return exportTo(f, l.Snapshot(ctx), exportFormat)
	},
}

// exportTo writes the snapshot and closes w, reporting a failed close.
func exportTo(w io.WriteCloser, snap ledger.Snapshot, format string) (err error) {
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close export: %w", cerr)
		}
	}()
	return ledger.WriteSnapshot(w, snap, format)
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "yaml", "output format: yaml or json")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "-", "output file, - for stdout")
}
