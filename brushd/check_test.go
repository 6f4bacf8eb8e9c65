package brushd

import "testing"

func TestCheckCorrupted(t *testing.T) {
	corruptions := map[string]func(m *Mesh){
		"Twin": func(m *Mesh) {
			m.halfEdges[0].Twin = 2
		},
		"Next": func(m *Mesh) {
			m.halfEdges[0].Next = m.halfEdges[m.halfEdges[0].Next].Next
		},
		"Face": func(m *Mesh) {
			m.halfEdges[0].Face = m.halfEdges[m.halfEdges[0].Twin].Face
		},
		"Unresolved": func(m *Mesh) {
			m.halfEdges[3].Next = NoHalfEdge
		},
		"Vertex": func(m *Mesh) {
			m.vertices[0].FirstEdge = NoHalfEdge
		},
		"Plane": func(m *Mesh) {
			m.vertices[0].Position = m.vertices[0].Position.Scale(1.5)
		},
	}
	for name, corrupt := range corruptions {
		t.Run(name, func(t *testing.T) {
			mesh := UnitCube().Clone()
			if err := mesh.Check(); err != nil {
				t.Fatal(err)
			}
			corrupt(mesh)
			if err := mesh.Check(); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestWalkCyclePanics(t *testing.T) {
	mesh := UnitCube().Clone()
	mesh.halfEdges[0].Next = NoHalfEdge
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic")
		}
	}()
	mesh.Face(mesh.halfEdges[0].Face).VertexCount()
}
