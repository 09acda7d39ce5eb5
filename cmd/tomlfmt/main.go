// Command tomlfmt is a CLI front end over the tomlmodel library: it can
// decode TOML to the BurntSushi tagged-JSON format, encode tagged JSON back
// to TOML, or simply re-serialize a document to check round-trip fidelity.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	log     = logrus.New()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tomlfmt",
		Short: "Inspect and round-trip TOML documents",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(os.Stderr)
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			} else {
				log.SetLevel(logrus.WarnLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log parse diagnostics")

	root.AddCommand(newDecodeCmd())
	root.AddCommand(newEncodeCmd())
	root.AddCommand(newFmtCmd())
	return root
}

// newFmtCmd re-parses and re-serializes stdin, the simplest possible
// fidelity check: valid input should come back byte-identical.
func newFmtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt",
		Short: "Parse stdin and re-serialize it to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readStdin()
			if err != nil {
				log.WithError(err).Error("reading stdin")
				return err
			}
			doc, err := parseOrLog(data)
			if err != nil {
				return err
			}
			fmt.Print(doc.AsString())
			return nil
		},
	}
}

func readStdin() ([]byte, error) {
	return readAll(os.Stdin)
}
