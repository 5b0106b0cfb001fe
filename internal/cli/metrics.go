package cli

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/fgs/search"
)

// writeMetrics exports the statistics of res as a node-exporter textfile.
func writeMetrics(path string, res *search.Result) error {
	reg := prometheus.NewRegistry()
	labels := prometheus.Labels{"run_id": res.RunID}
	gauge := func(name, help string, v float64) {
		g := prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "fgs",
			Subsystem:   "run",
			Name:        name,
			Help:        help,
			ConstLabels: labels,
		})
		g.Set(v)
		reg.MustRegister(g)
	}

	st := res.Stats
	gauge("inserts", "Insert operators applied.", float64(st.Inserts))
	gauge("deletes", "Delete operators applied.", float64(st.Deletes))
	gauge("operators_evaluated", "Candidate operators scored.", float64(st.Evaluated))
	gauge("candidates_rejected", "Candidates with an ill-determined score.", float64(st.Rejected))
	gauge("operators_reverted", "Operators rolled back because the rebuilt pattern scored no better.", float64(st.Reverted))
	gauge("ill_determined_nodes", "Nodes of the final pattern left out of the score.", float64(st.IllDetermined))
	gauge("orientation_conflicts", "Orientations skipped to keep the pattern acyclic and consistent with knowledge.", float64(st.Conflicts))
	gauge("cache_hits", "Local score cache hits.", float64(st.CacheHits))
	gauge("cache_misses", "Local score cache misses.", float64(st.CacheMisses))
	gauge("forward_seconds", "Duration of the forward phase.", st.Forward.Seconds())
	gauge("backward_seconds", "Duration of the backward phase.", st.Backward.Seconds())
	gauge("edges", "Edges in the final pattern.", float64(res.Graph.NumEdges()))
	gauge("score", "Total score of the final pattern.", res.Score())

	return prometheus.WriteToTextfile(path, reg)
}
