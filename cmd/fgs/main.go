// Command fgs runs Fast Greedy Search structure learning.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/katalvlaran/fgs/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if cli.IsInputError(err) {
			os.Exit(127)
		}
		os.Exit(1)
	}
}
