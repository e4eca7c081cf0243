package servicegraph

import (
	"encoding/xml"
	"fmt"
)

// graphmlDocument mirrors the minimal GraphML schema needed to round-trip
// a directed weighted multigraph with weight/dataTransfer edge attributes.
type graphmlDocument struct {
	XMLName xml.Name        `xml:"graphml"`
	Keys    []graphmlKey    `xml:"key"`
	Graph   graphmlGraphXML `xml:"graph"`
}

type graphmlKey struct {
	ID     string `xml:"id,attr"`
	For    string `xml:"for,attr"`
	Name   string `xml:"attr.name,attr"`
	Type   string `xml:"attr.type,attr"`
	Domain string `xml:"-"`
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
	Source string          `xml:"source,attr"`
	Target string          `xml:"target,attr"`
	Data   []graphmlDataXML `xml:"data"`
}

type graphmlDataXML struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

// ExportGraphML renders the service graph to a GraphML document with
// "weight" and "dataTransfer" edge attributes, per spec.md §4.2/§6.
func (sg *ServiceGraph) ExportGraphML() ([]byte, error) {
	doc := graphmlDocument{
		Keys: []graphmlKey{
			{ID: "weight", For: "edge", Name: "weight", Type: "double"},
			{ID: "dataTransfer", For: "edge", Name: "dataTransfer", Type: "double"},
		},
		Graph: graphmlGraphXML{EdgeDefault: "directed"},
	}

	for _, id := range sg.g.Vertices() {
		doc.Graph.Nodes = append(doc.Graph.Nodes, graphmlNode{ID: id})
	}
	for _, e := range sg.g.Edges() {
		doc.Graph.Edges = append(doc.Graph.Edges, graphmlEdge{
			Source: e.From,
			Target: e.To,
			Data: []graphmlDataXML{
				{Key: "weight", Value: fmt.Sprintf("%g", e.Weight)},
				{Key: "dataTransfer", Value: fmt.Sprintf("%g", e.Payload)},
			},
		})
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("servicegraph: export graphml: %w", err)
	}

	return append([]byte(xml.Header), out...), nil
}
