package brushd

import (
	"math"

	"github.com/pkg/errors"
)

// Check verifies the structural invariants of the mesh, returning an error
// describing the first violation.
//
// Faces without a boundary are allowed, since FromPlanes produces them for
// planes that do not touch the polyhedron.
func (m *Mesh) Check() error {
	if err := m.checkHalfEdges(); err != nil {
		return errors.Wrap(err, "check mesh")
	}
	if err := m.checkFaces(); err != nil {
		return errors.Wrap(err, "check mesh")
	}
	if err := m.checkVertices(); err != nil {
		return errors.Wrap(err, "check mesh")
	}
	return nil
}

func (m *Mesh) checkHalfEdges() error {
	numHalfEdges := HalfEdgeID(len(m.halfEdges))
	for i, h := range m.halfEdges {
		id := HalfEdgeID(i)
		if h.Twin >= numHalfEdges || h.Next >= numHalfEdges {
			return errors.Errorf("half-edge %d has unresolved twin or next", id)
		} else if h.Face >= FaceID(len(m.faces)) {
			return errors.Errorf("half-edge %d has no face", id)
		} else if h.Vertex >= VertexID(len(m.vertices)) {
			return errors.Errorf("half-edge %d has invalid vertex %d", id, h.Vertex)
		}
		twin := m.halfEdges[h.Twin]
		if h.Twin == id || twin.Twin != id {
			return errors.Errorf("half-edge %d is not the twin of its twin", id)
		} else if twin.Vertex == h.Vertex {
			return errors.Errorf("half-edge %d starts and ends at vertex %d", id, h.Vertex)
		} else if twin.Face == h.Face {
			return errors.Errorf("half-edge %d borders face %d on both sides", id, h.Face)
		}
	}
	return nil
}

func (m *Mesh) checkFaces() error {
	visited := make([]bool, len(m.halfEdges))
	for i, f := range m.faces {
		id := FaceID(i)
		if f.FirstEdge == NoHalfEdge {
			continue
		}
		cycle, err := m.boundedCycle(f.FirstEdge, m.faceStep)
		if err != nil {
			return errors.Wrapf(err, "face %d", id)
		}
		if len(cycle) < 3 {
			return errors.Errorf("face %d has %d vertices", id, len(cycle))
		}
		normal := f.Normal.Normalize()
		origin := m.vertices[m.source(f.FirstEdge)].Position
		for _, e := range cycle {
			if m.halfEdges[e].Face != id {
				return errors.Errorf("half-edge %d on boundary of face %d belongs to face %d",
					e, id, m.halfEdges[e].Face)
			}
			visited[e] = true
			offset := m.vertices[m.halfEdges[e].Vertex].Position.Sub(origin)
			if math.Abs(normal.Dot(offset)) > Epsilon {
				return errors.Errorf("vertex %d is not on the plane of face %d",
					m.halfEdges[e].Vertex, id)
			}
		}
	}
	for i, v := range visited {
		if !v {
			return errors.Errorf("half-edge %d is not on any face boundary", i)
		}
	}
	return nil
}

func (m *Mesh) checkVertices() error {
	degrees := make([]int, len(m.vertices))
	for i := range m.halfEdges {
		degrees[m.source(HalfEdgeID(i))]++
	}
	for i, v := range m.vertices {
		id := VertexID(i)
		if v.FirstEdge == NoHalfEdge {
			return errors.Errorf("vertex %d has no edges", id)
		}
		cycle, err := m.boundedCycle(v.FirstEdge, m.vertexStep)
		if err != nil {
			return errors.Wrapf(err, "vertex %d", id)
		}
		for _, e := range cycle {
			if m.source(e) != id {
				return errors.Errorf("half-edge %d around vertex %d starts at vertex %d",
					e, id, m.source(e))
			}
		}
		if len(cycle) != degrees[i] {
			return errors.Errorf("vertex %d has %d outgoing half-edges but only %d are connected",
				id, degrees[i], len(cycle))
		}
	}
	return nil
}

// boundedCycle is like walkCycle, but returns an error instead of
// panicking for a cycle that does not close.
func (m *Mesh) boundedCycle(start HalfEdgeID, step func(HalfEdgeID) HalfEdgeID) ([]HalfEdgeID,
	error) {
	var res []HalfEdgeID
	cur := start
	for len(res) <= len(m.halfEdges) {
		res = append(res, cur)
		cur = step(cur)
		if cur == start {
			return res, nil
		}
	}
	return nil, errors.Errorf("cycle from half-edge %d does not close", start)
}
