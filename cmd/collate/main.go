// Command collate aligns text witnesses into a variant graph and prints the
// alignment table.
//
// Usage:
//
//	collate align [--config collate.yaml] [--algorithm astar] w1.txt w2.txt ...
//	collate version
//
// Every file is one witness, tokenized on whitespace and named after the file.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/collate/collate"
	"github.com/katalvlaran/collate/config"
	"github.com/katalvlaran/collate/token"
	"github.com/katalvlaran/collate/variantgraph"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "collate",
		Short:        "Align text witnesses into a variant graph",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "collate v%s\n", version)
		},
	})

	alignCmd := &cobra.Command{
		Use:   "align FILE...",
		Short: "Collate witness files and print the alignment table",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runAlign,
	}
	alignCmd.Flags().String("config", "", "YAML configuration file")
	alignCmd.Flags().String("algorithm", "", "Alignment strategy: editgraph or astar (overrides config)")
	rootCmd.AddCommand(alignCmd)

	return rootCmd
}

func runAlign(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	algorithm, _ := cmd.Flags().GetString("algorithm")

	cfg, err := config.LoadFromEnvOrFile(configPath)
	if err != nil {
		return err
	}
	if algorithm != "" {
		cfg.Algorithm = algorithm
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	witnesses, err := readWitnesses(args, cfg.TokenOptions())
	if err != nil {
		return err
	}

	opts := append(cfg.Options(), collate.WithLogger(cfg.Logger(cmd.ErrOrStderr())))
	c, err := collate.New(opts...)
	if err != nil {
		return err
	}
	res, err := c.Collate(cmd.Context(), witnesses)
	if err != nil {
		return err
	}
	tbl, err := res.Table(cmd.Context())
	if err != nil {
		return err
	}

	return printTable(cmd.OutOrStdout(), tbl)
}

// readWitnesses loads one witness per file, named after the file without its
// extension.
func readWitnesses(paths []string, opts []token.Option) ([]*token.Witness, error) {
	out := make([]*token.Witness, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read witness: %w", err)
		}
		id := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		w, err := token.NewWitness(id, string(data), opts...)
		if err != nil {
			return nil, fmt.Errorf("witness %s: %w", p, err)
		}
		out = append(out, w)
	}

	return out, nil
}

// printTable writes one tab-aligned row per witness; gaps print as "-".
func printTable(w io.Writer, tbl *variantgraph.Table) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, id := range tbl.Witnesses {
		cells := make([]string, 0, tbl.Columns()+1)
		cells = append(cells, id)
		for _, t := range tbl.Rows[i] {
			if t == nil {
				cells = append(cells, "-")
				continue
			}
			cells = append(cells, t.Content)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}

	return tw.Flush()
}
