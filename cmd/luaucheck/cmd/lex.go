package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/0neShot101/rbxdev-ls-sub001/internal/lexer"
	"github.com/0neShot101/rbxdev-ls-sub001/internal/token"
	"github.com/spf13/cobra"
)

var (
	lexEval       string
	lexShowPos    bool
	lexSkipTrivia bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Luau file and print the resulting tokens",
	Long: `Tokenize a Luau source file and print the resulting token stream.

If no file is given, reads from stdin. Use -e to tokenize an inline
snippet instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEval, "eval", "e", "", "tokenize inline source instead of reading a file")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&lexSkipTrivia, "skip-trivia", false, "omit whitespace/comment/newline tokens")
}

func runLex(cmd *cobra.Command, args []string) error {
	src, err := readSource(lexEval, args)
	if err != nil {
		return err
	}

	for _, tok := range lexer.Lex(src) {
		if lexSkipTrivia && token.IsTrivia(tok.Kind) {
			continue
		}
		printToken(tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

func printToken(tok token.Token) {
	line := fmt.Sprintf("%-14s %q", tok.Kind.String(), tok.Lexeme)
	if lexShowPos {
		line += fmt.Sprintf(" @%s", tok.Start)
	}
	fmt.Println(line)
}

func readSource(eval string, args []string) (string, error) {
	if eval != "" {
		return eval, nil
	}
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}
