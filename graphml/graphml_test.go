package graphml_test

import (
	"bytes"
	"encoding/xml"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fgs/core"
	"github.com/katalvlaran/fgs/graphml"
)

func pattern(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraphFromNames([]string{"X1", "X2", "X3"})
	require.NoError(t, err)
	require.NoError(t, g.AddDirected(0, 1))
	require.NoError(t, g.AddUndirected(1, 2))

	return g
}

func TestWrite_Golden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, graphml.Write(&buf, pattern(t), "fgs"))

	gold := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	gold.Assert(t, "graphml_write", buf.Bytes())
}

func TestWrite_WellFormed(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, graphml.Write(&buf, pattern(t), "fgs"))

	var doc struct {
		Edges []struct {
			Source string `xml:"source,attr"`
			Target string `xml:"target,attr"`
			Data   string `xml:"data"`
		} `xml:"graph>edge"`
	}
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Edges, 2)
	assert.Equal(t, "X1", doc.Edges[0].Source)
	assert.Equal(t, "true", doc.Edges[0].Data)
	assert.Equal(t, "false", doc.Edges[1].Data)
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWrite_WriterError(t *testing.T) {
	err := graphml.Write(failWriter{}, pattern(t), "fgs")
	assert.ErrorContains(t, err, "disk full")
}
