package brushd

// A SplitFail explains why Split did not cut a face.
//
// It implements error, so it can be compared against the returned error
// directly.
type SplitFail int

const (
	// SplitInside means no part of the face is outside the plane.
	SplitInside SplitFail = iota + 1

	// SplitOutside means no part of the face is inside the plane.
	SplitOutside

	// SplitAligned means the face lies on the plane with the same
	// orientation.
	SplitAligned

	// SplitOppositeAligned means the face lies on the plane with the
	// opposite orientation.
	SplitOppositeAligned
)

func (s SplitFail) String() string {
	switch s {
	case SplitInside:
		return "inside"
	case SplitOutside:
		return "outside"
	case SplitAligned:
		return "aligned"
	case SplitOppositeAligned:
		return "opposite_aligned"
	}
	return "invalid"
}

func (s SplitFail) Error() string {
	return "split face: " + s.String()
}

// Split cuts a face along a plane.
//
// The part of the face inside the plane keeps the original face ID, while
// the part outside becomes a new face with the same normal. Edges that cross
// the plane are split with SplitAt, and the two halves are joined by a new
// edge. Boundary vertices that already lie on the plane are used as
// endpoints of the cut directly.
//
// Both cut endpoints appear on both resulting faces, so together the faces
// have two more vertices than the original face, plus one for every edge
// split at a crossing. A cut through two existing vertices adds no vertices
// to the mesh.
//
// If the face does not have vertices strictly on both sides of the plane,
// the mesh is left untouched and a SplitFail is returned.
func (m *Mesh) Split(face FaceID, p Plane) (FaceID, error) {
	edges := m.Face(face).HalfEdges()
	if len(edges) == 0 {
		return 0, SplitInside
	}

	sides := make([]PlaneSide, len(edges))
	var numInside, numOutside int
	start := -1
	for i, e := range edges {
		sides[i] = p.Side(e.Source().Position())
		switch sides[i] {
		case Inside:
			numInside++
			if start == -1 {
				start = i
			}
		case Outside:
			numOutside++
		}
	}
	if numInside == 0 && numOutside == 0 {
		if m.faces[face].Normal.Dot(p.Normal) > 0 {
			return 0, SplitAligned
		}
		return 0, SplitOppositeAligned
	} else if numOutside == 0 {
		return 0, SplitInside
	} else if numInside == 0 {
		return 0, SplitOutside
	}

	// Walking from an inside vertex, find the run of outside vertices.
	// Vertex i is the source of edges[i].
	n := len(edges)
	first := -1
	for s := 1; s < n; s++ {
		i := (start + s) % n
		if sides[i] == Outside {
			first = i
			break
		}
	}
	last := first
	for sides[(last+1)%n] == Outside {
		last = (last + 1) % n
	}
	before := (first + n - 1) % n
	after := (last + 1) % n

	var exitIn, exitOut HalfEdgeID
	if sides[before] == OnPlane {
		exitIn, exitOut = edges[(before+n-1)%n].id, edges[before].id
	} else {
		exitIn = edges[before].id
		exitOut = m.splitCrossing(exitIn, p)
	}
	var entryIn, entryOut HalfEdgeID
	if sides[after] == OnPlane {
		entryIn, entryOut = edges[last].id, edges[after].id
	} else {
		entryIn = edges[last].id
		entryOut = m.splitCrossing(entryIn, p)
	}

	newFace := FaceID(len(m.faces))
	cut := HalfEdgeID(len(m.halfEdges))
	cutTwin := cut + 1
	m.faces = append(m.faces, Face{FirstEdge: cutTwin, Normal: m.faces[face].Normal})
	m.halfEdges = append(m.halfEdges,
		HalfEdge{
			Vertex: m.halfEdges[entryIn].Vertex,
			Face:   face,
			Twin:   cutTwin,
			Next:   entryOut,
		},
		HalfEdge{
			Vertex: m.halfEdges[exitIn].Vertex,
			Face:   newFace,
			Twin:   cut,
			Next:   exitOut,
		},
	)
	m.halfEdges[exitIn].Next = cut
	m.halfEdges[entryIn].Next = cutTwin
	m.faces[face].FirstEdge = cut

	for e := exitOut; e != cutTwin; e = m.halfEdges[e].Next {
		m.halfEdges[e].Face = newFace
	}

	return newFace, nil
}

// splitCrossing splits an edge whose endpoints are on opposite sides of a
// plane at the point where it crosses the plane.
func (m *Mesh) splitCrossing(edge HalfEdgeID, p Plane) HalfEdgeID {
	source := m.vertices[m.source(edge)].Position
	target := m.vertices[m.halfEdges[edge].Vertex].Position
	point := FindDistanceRayIntersection(source, p.DistanceTo(source), target,
		p.DistanceTo(target))
	return m.SplitAt(edge, point)
}
