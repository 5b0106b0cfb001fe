package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fgs/covariance"
	"github.com/katalvlaran/fgs/dataset"
	"github.com/katalvlaran/fgs/graphml"
	"github.com/katalvlaran/fgs/knowledge"
	"github.com/katalvlaran/fgs/search"
)

// SearchOptions holds the flags of the search command.
type SearchOptions struct {
	Data             string
	Knowledge        string
	ExcludeVariables string
	Delimiter        string
	PenaltyDiscount  float64
	Depth            int
	Faithful         bool
	Threads          int
	IgnoreLinearDep  bool
	Verbose          bool
	GraphML          bool
	DirOut           string
	PrefixOut        string
	Config           string
	Timeout          time.Duration
	MetricsOut       string
}

// NewSearchCommand creates the search command.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SearchOptions{}

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Run FGS on a continuous dataset",
		Long: `Run Fast Greedy Search on a delimited file of continuous data.

Writes <prefix>_output.txt (parameters, data summary, optional progress and
the final pattern) to --dir-out, and <prefix>_graph.txt as GraphML when
--graphml is set. Settings may come from a YAML --config file; flags given
explicitly win.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(rootOpts, opts, cmd)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.Data, "data", "", "data file (required)")
	f.StringVar(&opts.Knowledge, "knowledge", "", "prior knowledge file")
	f.StringVar(&opts.ExcludeVariables, "exclude-variables", "", "file of variable names to exclude, one per line")
	f.StringVar(&opts.Delimiter, "delimiter", "tab", "data delimiter (tab|comma|space|semicolon|colon|pipe or one character)")
	f.Float64Var(&opts.PenaltyDiscount, "penalty-discount", search.DefaultPenaltyDiscount, "BIC penalty discount")
	f.IntVar(&opts.Depth, "depth", -1, "maximum conditioning set size, -1 for unbounded")
	f.BoolVar(&opts.Faithful, "faithful", false, "assume faithfulness")
	f.IntVar(&opts.Threads, "thread", runtime.NumCPU(), "number of worker threads")
	f.BoolVar(&opts.IgnoreLinearDep, "ignore-linear-dependence", false, "drop linearly dependent regressors instead of rejecting them")
	f.BoolVar(&opts.Verbose, "verbose", false, "write search progress to the report")
	f.BoolVar(&opts.GraphML, "graphml", false, "also write the pattern as GraphML")
	f.StringVar(&opts.DirOut, "dir-out", ".", "output directory")
	f.StringVar(&opts.PrefixOut, "prefix-out", "", "output file prefix (default fgs_<data>_<millis>)")
	f.StringVar(&opts.Config, "config", "", "YAML file of search settings")
	f.DurationVar(&opts.Timeout, "timeout", 0, "abandon the search after this long (0 = no limit)")
	f.StringVar(&opts.MetricsOut, "metrics-out", "", "write run statistics as a Prometheus textfile")

	return cmd
}

// config resolves the search configuration: defaults, then the YAML file,
// then flags. Without a file every flag applies; with one, only flags the
// user set.
func (o *SearchOptions) config(cmd *cobra.Command) (search.Config, error) {
	cfg := search.DefaultConfig()
	changed := func(string) bool { return true }
	if o.Config != "" {
		if err := loadConfigFile(o.Config, &cfg); err != nil {
			return cfg, err
		}
		changed = cmd.Flags().Changed
	}
	if changed("penalty-discount") {
		cfg.PenaltyDiscount = o.PenaltyDiscount
	}
	if changed("depth") {
		cfg.Depth = o.Depth
	}
	if changed("faithful") {
		cfg.FaithfulnessAssumed = o.Faithful
	}
	if changed("thread") {
		cfg.NumThreads = o.Threads
	}
	if changed("ignore-linear-dependence") {
		cfg.IgnoreLinearDependence = o.IgnoreLinearDep
	}
	if changed("verbose") {
		cfg.Verbose = o.Verbose
	}
	// The report keeps only the final pattern.
	cfg.NumPatternsToStore = 0

	return cfg, cfg.Validate()
}

func runSearch(rootOpts *RootOptions, opts *SearchOptions, cmd *cobra.Command) (err error) {
	logger := rootOpts.logger(cmd)

	// 1) Arguments.
	if opts.Data == "" {
		return inputErrorf("--data is required")
	}
	if _, err := os.Stat(opts.Data); err != nil {
		return inputError(err)
	}
	delim, err := dataset.ParseDelimiter(opts.Delimiter)
	if err != nil {
		return inputError(err)
	}
	cfg, err := opts.config(cmd)
	if err != nil {
		return inputError(err)
	}
	if info, err := os.Stat(opts.DirOut); err != nil || !info.IsDir() {
		return inputErrorf("--dir-out %q is not a directory", opts.DirOut)
	}
	prefix := opts.PrefixOut
	if prefix == "" {
		prefix = fmt.Sprintf("fgs_%s_%d", filepath.Base(opts.Data), time.Now().UnixMilli())
	}
	var know *knowledge.Knowledge
	if opts.Knowledge != "" {
		if know, err = knowledge.ParseFile(opts.Knowledge); err != nil {
			return inputError(err)
		}
	}
	var exclude []string
	if opts.ExcludeVariables != "" {
		if exclude, err = dataset.ReadExclusions(opts.ExcludeVariables); err != nil {
			return inputError(err)
		}
	}

	// 2) Report header.
	reportPath := filepath.Join(opts.DirOut, prefix+"_output.txt")
	f, err := os.Create(reportPath)
	if err != nil {
		return err
	}
	defer closeErr(&err, f)
	w := bufio.NewWriter(f)
	defer func() {
		if ferr := w.Flush(); err == nil && ferr != nil {
			err = ferr
		}
	}()

	lines, err := dataset.CountLines(opts.Data)
	if err != nil {
		return inputError(err)
	}
	cols, err := dataset.CountColumns(opts.Data, delim)
	if err != nil {
		return inputError(err)
	}
	writeParameters(w, cfg, opts, lines-1, cols, len(exclude))

	// 3) Data.
	d, err := dataset.ReadFile(opts.Data, dataset.Options{Delimiter: delim, Exclude: exclude})
	if err != nil {
		return inputError(err)
	}
	writeDatasetBlock(w, d, cols-len(exclude))
	cov, err := covariance.New(d)
	if err != nil {
		return inputError(err)
	}

	// 4) Search.
	cfg.Knowledge = know
	cfg.Logger = logger
	progress := &detachableWriter{w: w}
	cfg.Out = progress
	if cfg.Verbose {
		fmt.Fprintln(w)
	}
	engine, err := search.New(cov, cfg)
	if err != nil {
		return err
	}
	defer engine.Close()

	logger.Info("search starting", "data", opts.Data, "variables", d.NumColumns(), "cases", d.NumRows())
	res, runErr := runWithTimeout(cmd.Context(), engine, opts.Timeout)
	progress.detach()
	if runErr != nil {
		fmt.Fprintf(w, "\ntermination = %s (%v)\n", search.Aborted, runErr)
		return runErr
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.TrimRight(res.Graph.String(), "\n"))
	fmt.Fprintf(w, "\nrun id = %s\ntermination = %s\n", res.RunID, res.Status)

	// 5) Side outputs.
	if opts.GraphML {
		if err := writeGraphML(filepath.Join(opts.DirOut, prefix+"_graph.txt"), res, prefix); err != nil {
			return err
		}
	}
	if opts.MetricsOut != "" {
		if err := writeMetrics(opts.MetricsOut, res); err != nil {
			return err
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", reportPath)

	return nil
}

// runWithTimeout runs the engine, giving up after timeout. The engine has no
// cancellation of its own; an abandoned run finishes in the background.
func runWithTimeout(ctx context.Context, e *search.Engine, timeout time.Duration) (*search.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout <= 0 {
		return e.Run(ctx)
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type outcome struct {
		res *search.Result
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := e.Run(ctx)
		done <- outcome{res, err}
	}()
	select {
	case o := <-done:
		return o.res, o.err
	case <-ctx.Done():
		return nil, fmt.Errorf("search: gave up after %s: %w", timeout, ctx.Err())
	}
}

func writeParameters(w io.Writer, cfg search.Config, opts *SearchOptions, cases, vars, excluded int) {
	fmt.Fprintln(w, "Runtime Parameters:")
	fmt.Fprintf(w, "number of threads = %s\n", commas(cfg.NumThreads))
	fmt.Fprintf(w, "verbose = %t\n", cfg.Verbose)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Algorithm Parameters:")
	fmt.Fprintf(w, "penalty discount = %f\n", cfg.PenaltyDiscount)
	fmt.Fprintf(w, "depth = %d\n", cfg.Depth)
	fmt.Fprintf(w, "faithfulness = %t\n", cfg.FaithfulnessAssumed)
	fmt.Fprintf(w, "ignore linear dependence = %t\n", cfg.IgnoreLinearDependence)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Data File:")
	fmt.Fprintf(w, "file = %s\n", filepath.Base(opts.Data))
	fmt.Fprintf(w, "cases = %s\n", commas(cases))
	fmt.Fprintf(w, "variables = %s\n", commas(vars))
	fmt.Fprintln(w)

	if opts.Knowledge != "" {
		fmt.Fprintln(w, "Knowledge:")
		fmt.Fprintf(w, "file = %s\n", opts.Knowledge)
		fmt.Fprintln(w)
	}
	if opts.ExcludeVariables != "" {
		fmt.Fprintln(w, "Variable Exclusion:")
		fmt.Fprintf(w, "file = %s\n", opts.ExcludeVariables)
		fmt.Fprintf(w, "variables to exclude = %s\n", commas(excluded))
		fmt.Fprintln(w)
	}
}

func writeDatasetBlock(w io.Writer, d *dataset.Dataset, expected int) {
	names := d.Names()
	unique := make(map[string]struct{}, len(names))
	for _, n := range names {
		unique[n] = struct{}{}
	}
	fmt.Fprintln(w, "Dataset Read In:")
	fmt.Fprintf(w, "cases = %s\n", commas(d.NumRows()))
	fmt.Fprintf(w, "variables = %s\n", commas(d.NumColumns()))
	fmt.Fprintf(w, "variable list size = %s\n", commas(len(names)))
	fmt.Fprintf(w, "node list size = %s\n", commas(len(d.Variables())))
	fmt.Fprintf(w, "variable counts should be = %s\n", commas(expected))
	fmt.Fprintf(w, "unique variable list size = %s\n", commas(len(unique)))
}

func writeGraphML(path string, res *search.Result, name string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer closeErr(&err, f)

	return graphml.Write(f, res.Graph, name)
}

// commas formats n with thousands separators, e.g. 12,345.
func commas(n int) string {
	s := strconv.Itoa(n)
	neg := n < 0
	if neg {
		s = s[1:]
	}
	var out []byte
	for i := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	if neg {
		return "-" + string(out)
	}

	return string(out)
}

// detachableWriter forwards writes until detached, then drops them, so an
// abandoned run cannot write into a closed report.
type detachableWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (d *detachableWriter) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.w == nil {
		return len(p), nil
	}

	return d.w.Write(p)
}

func (d *detachableWriter) detach() {
	d.mu.Lock()
	d.w = nil
	d.mu.Unlock()
}
