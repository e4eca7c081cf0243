// File: methods_vertices.go
// Role: vertex lifecycle & queries: AddVertex/HasVertex/Vertices/Degree.
package core

import "sort"

// AddVertex inserts a vertex with the given ID and kind if absent.
// If a vertex with the same ID already exists, this is a no-op (its Kind
// and Metadata are left untouched).
//
// Complexity: O(1).
func (g *Graph) AddVertex(id, kind string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Kind: kind, Metadata: make(map[string]interface{})}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if _, ok := g.adjacencyList[id]; !ok {
		g.adjacencyList[id] = make(map[string]map[string]struct{})
	}

	return nil
}

// HasVertex reports whether the graph contains a vertex with the given ID.
func (g *Graph) HasVertex(id string) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the vertex with the given ID, or ErrVertexNotFound.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// Vertices returns all vertex IDs sorted ascending (deterministic order).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// SetMetadata attaches or replaces a metadata key on an existing vertex.
func (g *Graph) SetMetadata(id, key string, value interface{}) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.Metadata[key] = value

	return nil
}

// Degree returns the in-, out-, and undirected degree of a vertex.
// For undirected edges (Directed == false), the degree counts toward both
// in and out as well as undirected, since AddEdge mirrors the adjacency.
func (g *Graph) Degree(id string) (in, out, undirected int, err error) {
	if !g.HasVertex(id) {
		return 0, 0, 0, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for _, e := range g.edges {
		switch {
		case e.From == id && e.To == id:
			in++
			out++
			undirected++
		case e.From == id:
			out++
			if !e.Directed {
				in++
				undirected++
			}
		case e.To == id:
			in++
			if !e.Directed {
				out++
				undirected++
			}
		}
	}

	return in, out, undirected, nil
}

// VertexCount is declared in api.go; EdgeCount in methods_edges.go.
