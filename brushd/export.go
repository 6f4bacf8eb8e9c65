package brushd

import "github.com/unixpickle/model3d/model3d"

// TriangleMesh converts the faces of the mesh into a triangle mesh by fan
// triangulation from the first vertex of every face.
//
// Triangles are wound so that their normals match the face normals.
func (m *Mesh) TriangleMesh() *model3d.Mesh {
	res := model3d.NewMesh()
	for _, f := range m.Faces() {
		vertices := f.Vertices()
		if len(vertices) < 3 {
			continue
		}
		p0 := vertices[0].Position()
		for i := 1; i+1 < len(vertices); i++ {
			res.Add(&model3d.Triangle{
				p0,
				vertices[i].Position(),
				vertices[i+1].Position(),
			})
		}
	}
	return res
}
