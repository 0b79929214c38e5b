package cmd

import (
	"fmt"
	"os"

	"github.com/0neShot101/rbxdev-ls-sub001/internal/parser"
	"github.com/spf13/cobra"
)

var parseEval string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse Luau source and print the resulting statement tree",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseEval, "eval", "e", "", "parse an inline snippet instead of reading a file")
}

func runParse(cmd *cobra.Command, args []string) error {
	src, err := readSource(parseEval, args)
	if err != nil {
		return err
	}

	chunk, errs := parser.ParseSource(src)
	if len(errs) > 0 {
		fmt.Fprintln(os.Stderr, "parse errors:")
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "  %s\n", e.Error())
		}
		return fmt.Errorf("parsing failed with %d error(s)", len(errs))
	}

	for i, stmt := range chunk.Statements {
		fmt.Printf("%d: %T @ %s\n", i, stmt, stmt.Range())
	}
	return nil
}
