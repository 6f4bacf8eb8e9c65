package brushd

import "github.com/unixpickle/model3d/model3d"

// SplitAt inserts a new vertex at point along an edge, so that the edge and
// its twin each become two half-edges.
//
// After the split, edge runs from its original source to the new vertex,
// and the returned half-edge runs from the new vertex to the original
// target. The same holds in reverse for the twin side.
//
// The point must lie on the segment of the edge, for example as computed by
// Line.ClampedProject. This is not checked, and an off-edge point produces a
// mesh with valid topology but inconsistent geometry.
func (m *Mesh) SplitAt(edge HalfEdgeID, point model3d.Coord3D) HalfEdgeID {
	he := m.halfEdges[edge]
	twinID := he.Twin
	twin := m.halfEdges[twinID]

	mid := m.addVertex(point)
	newEdge := HalfEdgeID(len(m.halfEdges))
	newTwin := newEdge + 1
	m.halfEdges = append(m.halfEdges,
		HalfEdge{Vertex: he.Vertex, Face: he.Face, Twin: twinID, Next: he.Next},
		HalfEdge{Vertex: twin.Vertex, Face: twin.Face, Twin: edge, Next: twin.Next},
	)

	m.halfEdges[edge].Vertex = mid
	m.halfEdges[edge].Next = newEdge
	m.halfEdges[edge].Twin = newTwin

	m.halfEdges[twinID].Vertex = mid
	m.halfEdges[twinID].Next = newTwin
	m.halfEdges[twinID].Twin = newEdge

	m.vertices[mid].FirstEdge = newEdge

	return newEdge
}
