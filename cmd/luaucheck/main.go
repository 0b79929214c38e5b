package main

import (
	"fmt"
	"os"

	"github.com/0neShot101/rbxdev-ls-sub001/cmd/luaucheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
