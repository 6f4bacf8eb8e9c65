package brushd

import (
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
	"golang.org/x/exp/slices"
)

// FromPlanes creates the convex polyhedron bounded by the inside of every
// plane.
//
// The resulting mesh has one face per plane, in the same order and with the
// same normal. Faces of planes that do not touch the polyhedron have no
// boundary. If fewer than three planes are given, or the planes do not bound
// a region, the mesh has no vertices.
//
// This takes O(N^3) time in the number of planes, and is deterministic for a
// given plane ordering.
func FromPlanes(planes []Plane) *Mesh {
	if len(planes) < 3 {
		return NewMesh()
	}
	b := &meshBuilder{planes: planes}
	b.FindIntersections()
	b.PruneDegenerate()
	b.ResolveFaces()
	b.PruneDegenerate()
	return b.Build()
}

// FromPlanesBatch runs FromPlanes on many plane lists at once.
//
// The concurrency argument specifies the maximum number of Goroutines to
// use. If concurrency is 0, GOMAXPROCS is used.
func FromPlanesBatch(planeLists [][]Plane, concurrency int) []*Mesh {
	res := make([]*Mesh, len(planeLists))
	essentials.ConcurrentMap(concurrency, len(planeLists), func(i int) {
		res[i] = FromPlanes(planeLists[i])
	})
	return res
}

// A boundaryPoint is a point on the surface of the polyhedron where at
// least three planes meet.
type boundaryPoint struct {
	Position model3d.Coord3D
	Planes   []int
	Edges    []int
	Removed  bool

	vertex VertexID
}

// A boundaryEdge connects two boundary points along the line where two
// planes meet.
type boundaryEdge struct {
	Points [2]int

	// Shared contains every plane both points lie on, and Planes holds the
	// two of them that bound a face along the edge.
	Shared  []int
	Planes  [2]int
	Removed bool

	// HalfEdge points from Points[0] to Points[1], and its twin is the
	// next half-edge ID.
	HalfEdge HalfEdgeID
}

type meshBuilder struct {
	planes []Plane
	mesh   Mesh
	points []*boundaryPoint
	edges  []*boundaryEdge

	// facePlanes marks the planes that get a face with a boundary.
	facePlanes []bool
}

// FindIntersections searches every triple of planes for a point on the
// boundary of the polyhedron, connecting it to every previously found point
// that shares a line with it.
func (b *meshBuilder) FindIntersections() {
	n := len(b.planes)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				point, ok := FindIntersection(b.planes[i], b.planes[j], b.planes[k])
				if !ok {
					continue
				}
				planes, ok := b.boundaryPlanes(point, i, j, k)
				if !ok {
					continue
				}
				if !b.isFirstTriple(planes, i, j, k) {
					// Another triple of the same coincident planes already
					// produced this point.
					continue
				}
				b.addPoint(point, planes)
			}
		}
	}
}

// PruneDegenerate removes points with two or fewer edges, along with their
// edges, until every remaining point has at least three edges.
func (b *meshBuilder) PruneDegenerate() {
	for {
		changed := false
		for _, p := range b.points {
			if p.Removed {
				continue
			}
			if b.liveEdgeCount(p) <= 2 {
				p.Removed = true
				for _, e := range p.Edges {
					b.edges[e].Removed = true
				}
				changed = true
			}
		}
		if !changed {
			return
		}
	}
}

// ResolveFaces decides which planes bound a face with area, and tags every
// edge with the two such planes that meet along it.
//
// A plane touching the polyhedron only at a point or along an edge keeps an
// empty face, as does every copy of a coincident plane after the first.
func (b *meshBuilder) ResolveFaces() {
	b.facePlanes = make([]bool, len(b.planes))
	for i, p := range b.planes {
		if !b.hasArea(i) {
			continue
		}
		b.facePlanes[i] = true
		for j := 0; j < i; j++ {
			if b.facePlanes[j] && b.planes[j].Normal.Dist(p.Normal) < Epsilon {
				b.facePlanes[i] = false
				break
			}
		}
	}
	for _, e := range b.edges {
		if e.Removed {
			continue
		}
		var count int
		for _, plane := range e.Shared {
			if b.facePlanes[plane] {
				if count < 2 {
					e.Planes[count] = plane
				}
				count++
			}
		}
		if count != 2 {
			e.Removed = true
		}
	}
}

// hasArea checks if the surviving points on a plane are not all on one
// line.
func (b *meshBuilder) hasArea(plane int) bool {
	var origin, direction model3d.Coord3D
	var haveOrigin, haveDirection bool
	for _, p := range b.points {
		if p.Removed || !slices.Contains(p.Planes, plane) {
			continue
		}
		if !haveOrigin {
			origin, haveOrigin = p.Position, true
			continue
		}
		offset := p.Position.Sub(origin)
		if !haveDirection {
			if offset.Norm() > Epsilon {
				direction, haveDirection = offset.Normalize(), true
			}
		} else if direction.Cross(offset).Norm() > Epsilon {
			return true
		}
	}
	return false
}

// Build creates the vertices and half-edges of the surviving points and
// edges, and then links every half-edge into the boundary of its face.
func (b *meshBuilder) Build() *Mesh {
	m := &b.mesh
	m.faces = make([]Face, len(b.planes))
	for i, p := range b.planes {
		m.faces[i] = Face{FirstEdge: NoHalfEdge, Normal: p.Normal}
	}
	for _, p := range b.points {
		if !p.Removed {
			p.vertex = m.addVertex(p.Position)
		}
	}
	for _, e := range b.edges {
		if e.Removed {
			continue
		}
		e.HalfEdge = HalfEdgeID(len(m.halfEdges))
		m.halfEdges = append(m.halfEdges,
			HalfEdge{
				Vertex: b.points[e.Points[1]].vertex,
				Face:   NoFace,
				Twin:   e.HalfEdge + 1,
				Next:   NoHalfEdge,
			},
			HalfEdge{
				Vertex: b.points[e.Points[0]].vertex,
				Face:   NoFace,
				Twin:   e.HalfEdge,
				Next:   NoHalfEdge,
			},
		)
	}
	for i, p := range b.points {
		if !p.Removed {
			b.linkPoint(i)
		}
	}
	m.updateBounds()
	return m
}

// linkPoint connects the ingoing and outgoing half-edges of every face that
// touches a point.
func (b *meshBuilder) linkPoint(pointIdx int) {
	m := &b.mesh
	point := b.points[pointIdx]
	var edges []*boundaryEdge
	for _, e := range point.Edges {
		if !b.edges[e].Removed {
			edges = append(edges, b.edges[e])
		}
	}
	for i, e1 := range edges {
		for _, e2 := range edges[i+1:] {
			shared, other1, other2, ok := sharedPlane(e1.Planes, e2.Planes)
			if !ok {
				continue
			}

			// The boundary of a face runs counter-clockwise around its
			// normal, so along the line shared with another plane it
			// runs in the direction normal x other. The edge of e1 runs
			// away from this point exactly when that direction points
			// into the inside of the plane bounding e2.
			normal := b.planes[shared].Normal
			sign := normal.Cross(b.planes[other1].Normal).Dot(b.planes[other2].Normal)
			ingoing, outgoing := e1, e2
			if sign < 0 {
				ingoing, outgoing = e2, e1
			}

			inID := halfEdgeTo(ingoing, pointIdx)
			outID := halfEdgeFrom(outgoing, pointIdx)
			m.halfEdges[inID].Next = outID
			m.halfEdges[inID].Face = FaceID(shared)
			m.halfEdges[outID].Face = FaceID(shared)
			m.faces[shared].FirstEdge = outID
			m.vertices[point.vertex].FirstEdge = outID
		}
	}
}

// boundaryPlanes finds every plane that a point lies on, or returns false
// if the point is outside of any plane.
func (b *meshBuilder) boundaryPlanes(point model3d.Coord3D, i, j, k int) ([]int, bool) {
	res := make([]int, 0, 3)
	for l, p := range b.planes {
		if l == i || l == j || l == k {
			res = append(res, l)
			continue
		}
		switch p.Side(point) {
		case Outside:
			return nil, false
		case OnPlane:
			res = append(res, l)
		}
	}
	return res, true
}

// isFirstTriple checks if (i, j, k) is the first triple, in iteration
// order, of the sorted plane set that meets at a single point.
func (b *meshBuilder) isFirstTriple(planes []int, i, j, k int) bool {
	if len(planes) == 3 {
		return true
	}
	target := []int{i, j, k}
	for x := 0; x < len(planes); x++ {
		for y := x + 1; y < len(planes); y++ {
			for z := y + 1; z < len(planes); z++ {
				p1, p2, p3 := planes[x], planes[y], planes[z]
				if _, ok := FindIntersection(b.planes[p1], b.planes[p2], b.planes[p3]); ok {
					return slices.Equal(target, []int{p1, p2, p3})
				}
			}
		}
	}
	return false
}

func (b *meshBuilder) addPoint(position model3d.Coord3D, planes []int) {
	idx := len(b.points)
	point := &boundaryPoint{Position: position, Planes: planes}
	for otherIdx, other := range b.points {
		shared := intersectPlanes(planes, other.Planes)
		if !b.spansLine(shared) {
			continue
		}
		edgeIdx := len(b.edges)
		b.edges = append(b.edges, &boundaryEdge{
			Points: [2]int{otherIdx, idx},
			Shared: shared,
		})
		point.Edges = append(point.Edges, edgeIdx)
		other.Edges = append(other.Edges, edgeIdx)
	}
	b.points = append(b.points, point)
}

func (b *meshBuilder) liveEdgeCount(p *boundaryPoint) int {
	var count int
	for _, e := range p.Edges {
		if !b.edges[e].Removed {
			count++
		}
	}
	return count
}

// spansLine checks if the planes intersect in a single line, meaning that
// two of them are not parallel.
//
// Two vertices of a convex polyhedron on a common line are the endpoints of
// an edge.
func (b *meshBuilder) spansLine(planes []int) bool {
	for i, p1 := range planes {
		for _, p2 := range planes[i+1:] {
			if b.planes[p1].Normal.Cross(b.planes[p2].Normal).Norm() > Epsilon {
				return true
			}
		}
	}
	return false
}

func intersectPlanes(p1, p2 []int) []int {
	var res []int
	for _, p := range p1 {
		if slices.Contains(p2, p) {
			res = append(res, p)
		}
	}
	return res
}

// sharedPlane finds the single plane shared by two edges, along with the
// other plane of each edge.
func sharedPlane(p1, p2 [2]int) (shared, other1, other2 int, ok bool) {
	for i, x := range p1 {
		for j, y := range p2 {
			if x == y {
				if ok {
					// Both planes shared.
					return 0, 0, 0, false
				}
				shared, other1, other2, ok = x, p1[1-i], p2[1-j], true
			}
		}
	}
	return
}

func halfEdgeTo(e *boundaryEdge, point int) HalfEdgeID {
	if e.Points[1] == point {
		return e.HalfEdge
	}
	return e.HalfEdge + 1
}

func halfEdgeFrom(e *boundaryEdge, point int) HalfEdgeID {
	if e.Points[0] == point {
		return e.HalfEdge
	}
	return e.HalfEdge + 1
}
