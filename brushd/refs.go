package brushd

import "github.com/unixpickle/model3d/model3d"

// A VertexRef is a read-only cursor pointing at a vertex of a mesh.
type VertexRef struct {
	mesh *Mesh
	id   VertexID
}

func (v VertexRef) ID() VertexID {
	return v.id
}

func (v VertexRef) Position() model3d.Coord3D {
	return v.mesh.vertices[v.id].Position
}

func (v VertexRef) FirstEdge() HalfEdgeRef {
	return v.mesh.HalfEdge(v.mesh.vertices[v.id].FirstEdge)
}

// IterateHalfEdges calls f with every half-edge whose source is this vertex,
// circling the vertex from FirstEdge.
func (v VertexRef) IterateHalfEdges(f func(h HalfEdgeRef)) {
	m := v.mesh
	m.walkCycle(m.vertices[v.id].FirstEdge, m.vertexStep, func(id HalfEdgeID) bool {
		f(HalfEdgeRef{mesh: m, id: id})
		return true
	})
}

// HalfEdges gets every half-edge whose source is this vertex.
func (v VertexRef) HalfEdges() []HalfEdgeRef {
	var res []HalfEdgeRef
	v.IterateHalfEdges(func(h HalfEdgeRef) {
		res = append(res, h)
	})
	return res
}

// A HalfEdgeRef is a read-only cursor pointing at a half-edge of a mesh.
type HalfEdgeRef struct {
	mesh *Mesh
	id   HalfEdgeID
}

func (h HalfEdgeRef) ID() HalfEdgeID {
	return h.id
}

func (h HalfEdgeRef) Twin() HalfEdgeRef {
	return HalfEdgeRef{mesh: h.mesh, id: h.mesh.halfEdges[h.id].Twin}
}

func (h HalfEdgeRef) Next() HalfEdgeRef {
	return h.mesh.HalfEdge(h.mesh.halfEdges[h.id].Next)
}

func (h HalfEdgeRef) Face() FaceRef {
	return h.mesh.Face(h.mesh.halfEdges[h.id].Face)
}

// Target gets the vertex this half-edge points to.
func (h HalfEdgeRef) Target() VertexRef {
	return VertexRef{mesh: h.mesh, id: h.mesh.halfEdges[h.id].Vertex}
}

// Source gets the vertex this half-edge originates from, which is the
// target of its twin.
func (h HalfEdgeRef) Source() VertexRef {
	return VertexRef{mesh: h.mesh, id: h.mesh.source(h.id)}
}

// IsPrimary checks if this is the half-edge of its pair which borders the
// lower face ID.
func (h HalfEdgeRef) IsPrimary() bool {
	he := h.mesh.halfEdges[h.id]
	return he.Face < h.mesh.halfEdges[he.Twin].Face
}

// Line gets the segment from the source to the target.
func (h HalfEdgeRef) Line() Line {
	return Line{Start: h.Source().Position(), End: h.Target().Position()}
}

// A FaceRef is a read-only cursor pointing at a face of a mesh.
type FaceRef struct {
	mesh *Mesh
	id   FaceID
}

func (f FaceRef) ID() FaceID {
	return f.id
}

func (f FaceRef) Normal() model3d.Coord3D {
	return f.mesh.faces[f.id].Normal
}

func (f FaceRef) FirstEdge() HalfEdgeRef {
	return f.mesh.HalfEdge(f.mesh.faces[f.id].FirstEdge)
}

// IsEmpty checks if the face has no boundary, which happens for planes that
// do not touch the polytope.
func (f FaceRef) IsEmpty() bool {
	return f.mesh.faces[f.id].FirstEdge == NoHalfEdge
}

// Plane gets the plane through the face's first vertex with the face's
// normal.
//
// For an empty face, the plane passes through the origin.
func (f FaceRef) Plane() Plane {
	face := f.mesh.faces[f.id]
	if face.FirstEdge == NoHalfEdge {
		return Plane{Normal: face.Normal}
	}
	point := f.mesh.vertices[f.mesh.source(face.FirstEdge)].Position
	return NewPlanePoint(face.Normal, point)
}

// IterateHalfEdges calls f with each half-edge on the boundary, following
// Next from the first edge.
func (f FaceRef) IterateHalfEdges(fn func(h HalfEdgeRef)) {
	m := f.mesh
	m.walkCycle(m.faces[f.id].FirstEdge, m.faceStep, func(id HalfEdgeID) bool {
		fn(HalfEdgeRef{mesh: m, id: id})
		return true
	})
}

// HalfEdges gets the boundary cycle of the face.
func (f FaceRef) HalfEdges() []HalfEdgeRef {
	var res []HalfEdgeRef
	f.IterateHalfEdges(func(h HalfEdgeRef) {
		res = append(res, h)
	})
	return res
}

// IterateVertices calls fn with the source vertex of every boundary
// half-edge, in boundary order.
func (f FaceRef) IterateVertices(fn func(v VertexRef)) {
	f.IterateHalfEdges(func(h HalfEdgeRef) {
		fn(h.Source())
	})
}

// Vertices gets the boundary vertices in boundary order.
func (f FaceRef) Vertices() []VertexRef {
	var res []VertexRef
	f.IterateVertices(func(v VertexRef) {
		res = append(res, v)
	})
	return res
}

// VertexCount gets the length of the boundary cycle.
func (f FaceRef) VertexCount() int {
	var count int
	f.IterateHalfEdges(func(h HalfEdgeRef) {
		count++
	})
	return count
}

// Centroid gets the mean of the boundary vertices.
func (f FaceRef) Centroid() model3d.Coord3D {
	var sum model3d.Coord3D
	var count int
	f.IterateVertices(func(v VertexRef) {
		sum = sum.Add(v.Position())
		count++
	})
	if count == 0 {
		return sum
	}
	return sum.Scale(1 / float64(count))
}

// IsOnFace checks if c lies within the boundary of the face, when viewed
// along the face normal.
//
// Each boundary edge defines a half-plane, and c must not be on the outer
// side of any of them.
func (f FaceRef) IsOnFace(c model3d.Coord3D) bool {
	normal := f.Normal()
	result := !f.IsEmpty()
	f.IterateHalfEdges(func(h HalfEdgeRef) {
		line := h.Line()
		cross := line.Direction().Cross(c.Sub(line.Start))
		if DefaultTolerance.Sign(cross.Dot(normal)) < 0 {
			result = false
		}
	})
	return result
}
