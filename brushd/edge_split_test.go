package brushd

import (
	"math/rand"
	"testing"

	"github.com/unixpickle/model3d/model3d"
)

func TestSplitAtCubeTopEdge(t *testing.T) {
	mesh := UnitCube().Clone()
	top := findFace(t, mesh, model3d.Z(1))

	var edge HalfEdgeRef
	var found bool
	top.IterateHalfEdges(func(h HalfEdgeRef) {
		if h.Target().Position() == model3d.XYZ(0.5, 0.5, 0.5) {
			edge = h
			found = true
		}
	})
	if !found {
		t.Fatal("missing edge")
	}

	line := edge.Line()
	mid := line.ClampedProject(line.Lerp(0.5))
	source, target := edge.Source().ID(), edge.Target().ID()
	twinFace := edge.Twin().Face()
	oldNext := edge.Next().ID()

	newEdge := mesh.HalfEdge(mesh.SplitAt(edge.ID(), mid))
	testMeshInvariants(t, mesh)

	if n := mesh.NumVertices(); n != 9 {
		t.Errorf("expected 9 vertices but got %d", n)
	}
	if n := mesh.NumHalfEdges(); n != 26 {
		t.Errorf("expected 26 half-edges but got %d", n)
	}
	if n := mesh.NumFaces(); n != 6 {
		t.Errorf("expected 6 faces but got %d", n)
	}
	if n := top.VertexCount(); n != 5 {
		t.Errorf("expected top face to have 5 vertices but got %d", n)
	}
	if n := twinFace.VertexCount(); n != 5 {
		t.Errorf("expected side face to have 5 vertices but got %d", n)
	}

	edge = mesh.HalfEdge(edge.ID())
	if edge.Next() != newEdge {
		t.Error("split edge should lead into the new edge")
	}
	if newEdge.Next().ID() != oldNext {
		t.Error("new edge should lead into the old next edge")
	}
	if edge.Source().ID() != source || newEdge.Target().ID() != target {
		t.Error("split edges should span the original endpoints")
	}
	if edge.Target() != newEdge.Source() || edge.Target().Position() != mid {
		t.Error("split edges should meet at the midpoint")
	}
	if newEdge.Face() != top || newEdge.Twin().Face() != twinFace {
		t.Error("new half-edges should keep the original faces")
	}
	if n := len(edge.Target().HalfEdges()); n != 2 {
		t.Errorf("midpoint should have 2 half-edges but has %d", n)
	}
}

func TestSplitAtChained(t *testing.T) {
	mesh := UnitCube().Clone()
	edge := mesh.Edges()[0]
	line := edge.Line()
	id := edge.ID()
	for i := 1; i < 4; i++ {
		id = mesh.SplitAt(id, line.Lerp(float64(i)/4))
	}
	testMeshInvariants(t, mesh)
	if n := edge.Face().VertexCount(); n != 7 {
		t.Errorf("expected 7 vertices but got %d", n)
	}
	if mesh.HalfEdge(id).Target().Position() != line.End {
		t.Error("last split edge should end at the original target")
	}
}

func TestSplitAtRandom(t *testing.T) {
	rand.Seed(0)
	mesh := UnitCube().Clone()
	for i := 0; i < 50; i++ {
		edges := mesh.Edges()
		edge := edges[rand.Intn(len(edges))]
		face := edge.Face()
		oldCount := face.VertexCount()
		numVertices, numHalfEdges, numFaces := mesh.NumVertices(), mesh.NumHalfEdges(),
			mesh.NumFaces()

		point := edge.Line().ClampedProject(model3d.NewCoord3DRandNorm())
		if point == edge.Line().Start || point == edge.Line().End {
			continue
		}
		mesh.SplitAt(edge.ID(), point)

		if mesh.NumVertices() != numVertices+1 || mesh.NumHalfEdges() != numHalfEdges+2 ||
			mesh.NumFaces() != numFaces {
			t.Fatal("unexpected element counts after split")
		}
		if face.VertexCount() != oldCount+1 {
			t.Fatal("face should gain a vertex")
		}
	}
	testMeshInvariants(t, mesh)
}

func findFace(t *testing.T, m *Mesh, normal model3d.Coord3D) FaceRef {
	for _, f := range m.Faces() {
		if f.Normal() == normal {
			return f
		}
	}
	t.Fatalf("no face with normal %v", normal)
	return FaceRef{}
}
