package brushd

import (
	"math"

	"github.com/unixpickle/model3d/model3d"
	"golang.org/x/exp/slices"
)

type VertexID uint32
type HalfEdgeID uint32
type FaceID uint32

const (
	// NoHalfEdge is stored in place of a half-edge reference that has not
	// been resolved, such as the boundary of a face with no vertices.
	NoHalfEdge = HalfEdgeID(math.MaxUint32)

	// NoFace is stored on half-edges that were never assigned to a face.
	NoFace = FaceID(math.MaxUint32)
)

type Vertex struct {
	Position model3d.Coord3D

	// FirstEdge is any half-edge whose source is this vertex.
	FirstEdge HalfEdgeID
}

// A HalfEdge is one directed side of an edge.
//
// A half-edge points at Vertex and originates at the vertex of its Twin.
type HalfEdge struct {
	Vertex VertexID
	Face   FaceID
	Twin   HalfEdgeID
	Next   HalfEdgeID
}

type Face struct {
	FirstEdge HalfEdgeID
	Normal    model3d.Coord3D
}

// A Mesh is a convex polyhedron stored as a half-edge graph.
//
// All references between vertices, half-edges, and faces are indices into
// the mesh's arrays. Elements are never removed, so an ID stays valid for
// the lifetime of the mesh.
//
// A Mesh is not safe for concurrent modification. Readers that run alongside
// an editor should take a Clone() once an operation completes.
type Mesh struct {
	vertices  []Vertex
	halfEdges []HalfEdge
	faces     []Face

	bounds model3d.Rect
}

// NewMesh creates an empty mesh.
func NewMesh() *Mesh {
	return &Mesh{}
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	return &Mesh{
		vertices:  slices.Clone(m.vertices),
		halfEdges: slices.Clone(m.halfEdges),
		faces:     slices.Clone(m.faces),
		bounds:    m.bounds,
	}
}

func (m *Mesh) NumVertices() int {
	return len(m.vertices)
}

func (m *Mesh) NumHalfEdges() int {
	return len(m.halfEdges)
}

func (m *Mesh) NumFaces() int {
	return len(m.faces)
}

// Vertex gets a cursor for the vertex.
//
// Panics if the ID is out of range.
func (m *Mesh) Vertex(id VertexID) VertexRef {
	_ = m.vertices[id]
	return VertexRef{mesh: m, id: id}
}

// HalfEdge gets a cursor for the half-edge.
//
// Panics if the ID is out of range.
func (m *Mesh) HalfEdge(id HalfEdgeID) HalfEdgeRef {
	_ = m.halfEdges[id]
	return HalfEdgeRef{mesh: m, id: id}
}

// Face gets a cursor for the face.
//
// Panics if the ID is out of range.
func (m *Mesh) Face(id FaceID) FaceRef {
	_ = m.faces[id]
	return FaceRef{mesh: m, id: id}
}

// Vertices gets a cursor for every vertex in ID order.
func (m *Mesh) Vertices() []VertexRef {
	res := make([]VertexRef, len(m.vertices))
	for i := range res {
		res[i] = VertexRef{mesh: m, id: VertexID(i)}
	}
	return res
}

// HalfEdges gets a cursor for every half-edge in ID order.
func (m *Mesh) HalfEdges() []HalfEdgeRef {
	res := make([]HalfEdgeRef, len(m.halfEdges))
	for i := range res {
		res[i] = HalfEdgeRef{mesh: m, id: HalfEdgeID(i)}
	}
	return res
}

// Faces gets a cursor for every face in ID order.
func (m *Mesh) Faces() []FaceRef {
	res := make([]FaceRef, len(m.faces))
	for i := range res {
		res[i] = FaceRef{mesh: m, id: FaceID(i)}
	}
	return res
}

// Edges gets the primary half-edge of every undirected edge.
func (m *Mesh) Edges() []HalfEdgeRef {
	res := make([]HalfEdgeRef, 0, len(m.halfEdges)/2)
	for i := range m.halfEdges {
		h := HalfEdgeRef{mesh: m, id: HalfEdgeID(i)}
		if h.IsPrimary() {
			res = append(res, h)
		}
	}
	return res
}

// Min gets the minimum point of the mesh's bounding box.
func (m *Mesh) Min() model3d.Coord3D {
	return m.bounds.MinVal
}

// Max gets the maximum point of the mesh's bounding box.
func (m *Mesh) Max() model3d.Coord3D {
	return m.bounds.MaxVal
}

// Bounds gets the cached axis-aligned bounding box of all the vertices.
//
// For a mesh without vertices, this is an empty box at the origin.
func (m *Mesh) Bounds() *model3d.Rect {
	b := m.bounds
	return &b
}

// Planes gets the current plane of every face that has a boundary, in face
// order.
func (m *Mesh) Planes() []Plane {
	res := make([]Plane, 0, len(m.faces))
	for _, f := range m.Faces() {
		if !f.IsEmpty() {
			res = append(res, f.Plane())
		}
	}
	return res
}

// Polytope converts the mesh into the polytope bounded by its face planes.
func (m *Mesh) Polytope() model3d.ConvexPolytope {
	return PlanesPolytope(m.Planes())
}

// Contains checks if c is inside or on the boundary of the mesh.
//
// An empty mesh contains nothing.
func (m *Mesh) Contains(c model3d.Coord3D) bool {
	planes := m.Planes()
	if len(planes) == 0 {
		return false
	}
	for _, p := range planes {
		if p.Side(c) == Outside {
			return false
		}
	}
	return true
}

func (m *Mesh) addVertex(c model3d.Coord3D) VertexID {
	id := VertexID(len(m.vertices))
	m.vertices = append(m.vertices, Vertex{Position: c, FirstEdge: NoHalfEdge})
	if id == 0 {
		m.bounds = model3d.Rect{MinVal: c, MaxVal: c}
	} else {
		m.bounds = model3d.Rect{MinVal: m.bounds.MinVal.Min(c), MaxVal: m.bounds.MaxVal.Max(c)}
	}
	return id
}

func (m *Mesh) updateBounds() {
	if len(m.vertices) == 0 {
		m.bounds = model3d.Rect{}
		return
	}
	min, max := m.vertices[0].Position, m.vertices[0].Position
	for _, v := range m.vertices[1:] {
		min = min.Min(v.Position)
		max = max.Max(v.Position)
	}
	m.bounds = model3d.Rect{MinVal: min, MaxVal: max}
}

func (m *Mesh) source(id HalfEdgeID) VertexID {
	return m.halfEdges[m.halfEdges[id].Twin].Vertex
}

func (m *Mesh) faceStep(id HalfEdgeID) HalfEdgeID {
	return m.halfEdges[id].Next
}

func (m *Mesh) vertexStep(id HalfEdgeID) HalfEdgeID {
	return m.halfEdges[m.halfEdges[id].Twin].Next
}

// walkCycle calls f for each half-edge on the cycle that starts at start
// and advances with step, stopping early if f returns false.
//
// Panics if the cycle does not return to start.
func (m *Mesh) walkCycle(start HalfEdgeID, step func(HalfEdgeID) HalfEdgeID,
	f func(HalfEdgeID) bool) {
	if start == NoHalfEdge {
		return
	}
	cur := start
	for i := 0; i < len(m.halfEdges); i++ {
		if !f(cur) {
			return
		}
		cur = step(cur)
		if cur == start {
			return
		} else if cur == NoHalfEdge {
			panic("half-edge cycle is disconnected")
		}
	}
	panic("half-edge cycle does not close")
}
