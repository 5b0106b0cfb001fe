package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fgs/compare"
	"github.com/katalvlaran/fgs/core"
)

// CompareOptions holds the flags of the compare command.
type CompareOptions struct {
	Target    string
	Reference string
}

// NewCompareCommand creates the compare command.
func NewCompareCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompareOptions{}

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Count adjacency and arrowhead errors of a graph against a reference",
		Long: `Compare a target graph with a reference graph, both in the text
format of the search report ("Graph Nodes:" / "Graph Edges:"), and print
true positives, false positives, false negatives, precision and recall.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Target, "target", "", "estimated graph file (required)")
	cmd.Flags().StringVar(&opts.Reference, "reference", "", "true graph file (required)")

	return cmd
}

func runCompare(opts *CompareOptions, cmd *cobra.Command) error {
	if opts.Target == "" || opts.Reference == "" {
		return inputErrorf("--target and --reference are required")
	}
	target, err := readGraph(opts.Target)
	if err != nil {
		return err
	}
	reference, err := readGraph(opts.Reference)
	if err != nil {
		return err
	}
	c, err := compare.Compare(target, reference)
	if err != nil {
		return inputError(err)
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), c)

	return err
}

// readGraph parses a graph file. A search report works too: only the lines
// from "Graph Nodes:" to the blank line ending the edge list are read.
func readGraph(path string) (*core.Graph, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, inputError(err)
	}
	text := string(raw)
	if i := strings.Index(text, "Graph Nodes:"); i >= 0 {
		text = text[i:]
	}
	if i := strings.Index(text, "Graph Edges:"); i >= 0 {
		if j := strings.Index(text[i:], "\n\n"); j >= 0 {
			text = text[:i+j+1]
		}
	}
	g, err := core.ParseGraph(strings.NewReader(text))
	if err != nil {
		return nil, inputErrorf("%s: %v", path, err)
	}

	return g, nil
}
