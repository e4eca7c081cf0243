package resultgraph

import (
	"encoding/csv"
	"encoding/xml"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/UIBK-DPS-DC/Pulse/core"
)

type graphmlDocument struct {
	XMLName xml.Name        `xml:"graphml"`
	Keys    []graphmlKey    `xml:"key"`
	Graph   graphmlGraphXML `xml:"graph"`
}

type graphmlKey struct {
	ID   string `xml:"id,attr"`
	For  string `xml:"for,attr"`
	Name string `xml:"attr.name,attr"`
	Type string `xml:"attr.type,attr"`
}

type graphmlGraphXML struct {
	EdgeDefault string        `xml:"edgedefault,attr"`
	Nodes       []graphmlNode `xml:"node"`
	Edges       []graphmlEdge `xml:"edge"`
}

type graphmlNode struct {
	ID string `xml:"id,attr"`
}

type graphmlEdge struct {
	Source string           `xml:"source,attr"`
	Target string           `xml:"target,attr"`
	Data   []graphmlDataXML `xml:"data"`
}

type graphmlDataXML struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

func exportGraphML(g *core.Graph) ([]byte, error) {
	doc := graphmlDocument{
		Keys: []graphmlKey{
			{ID: "cost", For: "edge", Name: "cost", Type: "double"},
			{ID: "latency", For: "edge", Name: "latency", Type: "double"},
		},
		Graph: graphmlGraphXML{EdgeDefault: "directed"},
	}

	for _, id := range g.Vertices() {
		doc.Graph.Nodes = append(doc.Graph.Nodes, graphmlNode{ID: id})
	}
	for _, e := range g.Edges() {
		doc.Graph.Edges = append(doc.Graph.Edges, graphmlEdge{
			Source: e.From,
			Target: e.To,
			Data: []graphmlDataXML{
				{Key: "cost", Value: fmt.Sprintf("%g", e.Weight)},
				{Key: "latency", Value: fmt.Sprintf("%g", e.Payload)},
			},
		})
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("resultgraph: export graphml: %w", err)
	}

	return append([]byte(xml.Header), out...), nil
}

// ExportGraphML renders the assignment graph to GraphML with "cost" and
// "latency" edge attributes (the latter always 0 for a local graph).
func (ag *AssignmentGraph) ExportGraphML() ([]byte, error) { return exportGraphML(ag.g) }

// ExportGraphML renders the composition graph to GraphML with "cost" and
// "latency" edge attributes.
func (cg *CompositionGraph) ExportGraphML() ([]byte, error) { return exportGraphML(cg.g) }

// exportCountMatrixCSV writes rows×cols occurrence counts with a leading
// empty header cell and sorted row/column labels (spec.md §6).
func exportCountMatrixCSV(g *core.Graph, rowKind, colKind string) ([]byte, error) {
	rowSet := make(map[string]bool)
	colSet := make(map[string]bool)
	counts := make(map[string]map[string]int)

	for _, e := range g.Edges() {
		fromV, _ := g.Vertex(e.From)
		toV, _ := g.Vertex(e.To)
		if fromV == nil || toV == nil || fromV.Kind != rowKind || toV.Kind != colKind {
			continue
		}
		rowSet[e.From] = true
		colSet[e.To] = true
		if counts[e.From] == nil {
			counts[e.From] = make(map[string]int)
		}
		counts[e.From][e.To]++
	}

	rows := sortedKeys(rowSet)
	cols := sortedKeys(colSet)

	var buf strings.Builder
	w := csv.NewWriter(&buf)

	header := append([]string{""}, cols...)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("resultgraph: write csv header: %w", err)
	}
	for _, r := range rows {
		record := make([]string, len(cols)+1)
		record[0] = r
		for j, c := range cols {
			record[j+1] = strconv.Itoa(counts[r][c])
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("resultgraph: write csv row %q: %w", r, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("resultgraph: flush csv: %w", err)
	}

	return []byte(buf.String()), nil
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// ExportCSV renders the service×resource assignment count matrix.
func (ag *AssignmentGraph) ExportCSV() ([]byte, error) {
	return exportCountMatrixCSV(ag.g, "service", "resource")
}

// ExportCSV renders the service×(cluster,resource) assignment count
// matrix.
func (cg *CompositionGraph) ExportCSV() ([]byte, error) {
	return exportCountMatrixCSV(cg.g, "service", "cluster-resource")
}
