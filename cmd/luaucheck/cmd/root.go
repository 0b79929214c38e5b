package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information, set by build flags.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "luaucheck",
	Short: "Static analysis core for Luau scripts",
	Long: `luaucheck lexes, parses, and type-checks Luau source without executing it.

It implements a bidirectional type checker over a gradually-typed Lua
dialect: literal inference, flow-sensitive narrowing on IsA() checks,
Roblox-aware special forms (Instance.new, GetService, signal :Wait()), and
a diagnostic taxonomy editors can match on by stable code (E0NN/W0NN).`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
