// Command stdfdump decodes an STDF v4 file and prints one line per record.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stdf-go/stdfcore"
	"github.com/stdf-go/stdfcore/internal/logging"
	"github.com/stdf-go/stdfcore/internal/record"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		omitGeneric bool
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "stdfdump <file>",
		Short: "Decode and print the records in an STDF v4 file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := stdfcore.DefaultOptions()
			if omitGeneric {
				opts.Omit = stdfcore.OmitGenericData
			}
			if verbose {
				opts.Logger = logging.NewDefaultLogger(logging.LevelDebug)
			}

			p, err := stdfcore.Open(args[0], opts)
			if err != nil {
				return err
			}
			defer p.Close()

			count := 0
			err = p.Run(context.Background(), func(rec record.Decoded) error {
				count++
				fmt.Fprintf(cmd.OutOrStdout(), "%04d  typ=%-3d sub=%-3d  %#v\n",
					count, rec.Header.Typ, rec.Header.Sub, rec.Body)
				return nil
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "decoded %d records\n", count)
			return nil
		},
	}

	cmd.Flags().BoolVar(&omitGeneric, "omit-generic", false, "skip decoding GDR/DTR payloads")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")

	return cmd
}
