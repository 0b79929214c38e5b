package cmd

import (
	"fmt"
	"os"

	"github.com/0neShot101/rbxdev-ls-sub001/internal/checker"
	"github.com/0neShot101/rbxdev-ls-sub001/internal/diagformat"
	"github.com/0neShot101/rbxdev-ls-sub001/internal/ignorelines"
	"github.com/0neShot101/rbxdev-ls-sub001/internal/lexer"
	"github.com/0neShot101/rbxdev-ls-sub001/internal/parser"
	"github.com/0neShot101/rbxdev-ls-sub001/internal/token"
	"github.com/0neShot101/rbxdev-ls-sub001/internal/types"
	"github.com/0neShot101/rbxdev-ls-sub001/internal/universe"
	"github.com/spf13/cobra"
)

var (
	checkEval   string
	checkStrict bool
	checkColor  bool
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Type-check a Luau file and report diagnostics",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkEval, "eval", "e", "", "check an inline snippet instead of reading a file")
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "check in strict mode")
	checkCmd.Flags().BoolVar(&checkColor, "color", false, "color diagnostic output")
}

func runCheck(cmd *cobra.Command, args []string) error {
	file := ""
	if len(args) == 1 {
		file = args[0]
	}

	src, err := readSource(checkEval, args)
	if err != nil {
		return err
	}

	chunk, perrs := parser.ParseSource(src)
	if len(perrs) > 0 {
		for _, e := range perrs {
			fmt.Fprintln(os.Stderr, e.Error())
		}
	}

	toks := lexer.Lex(src)
	var comments []token.Token
	for _, tk := range toks {
		if tk.Kind == token.Comment {
			comments = append(comments, tk)
		}
	}
	lastLine := 1
	if n := len(toks); n > 0 {
		lastLine = toks[n-1].Start.Line
	}

	mode := types.ModeNonStrict
	if checkStrict {
		mode = types.ModeStrict
	}

	result := checker.Check(chunk, checker.Options{
		Mode:     mode,
		Universe: universe.NewDemo(),
		Ignore:   ignorelines.Build(comments, lastLine),
	})

	if len(result.Diagnostics) == 0 {
		fmt.Println("no diagnostics")
		return nil
	}

	fmt.Print(diagformat.Format(src, result.Diagnostics, diagformat.Options{File: file, Color: checkColor}))

	for _, d := range result.Diagnostics {
		if d.Severity == checker.SeverityError {
			return fmt.Errorf("check failed with errors")
		}
	}
	return nil
}
