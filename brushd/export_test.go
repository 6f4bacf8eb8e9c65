package brushd

import (
	"math"
	"testing"

	"github.com/unixpickle/model3d/model3d"
)

func TestTriangleMesh(t *testing.T) {
	mesh := UnitCube().Clone()
	if _, err := mesh.Split(4, Plane{Normal: model3d.X(1), Distance: 0.1}); err != nil {
		t.Fatal(err)
	}
	triangles := mesh.TriangleMesh()

	var area float64
	triangles.Iterate(func(tri *model3d.Triangle) {
		area += tri.Area()
		center := tri[0].Add(tri[1]).Add(tri[2]).Scale(1.0 / 3)
		if tri.Normal().Dot(center) <= 0 {
			t.Errorf("triangle %v faces inward", tri)
		}
	})
	if math.Abs(area-6) > 1e-8 {
		t.Errorf("expected area 6 but got %f", area)
	}
	// Two faces gained vertices from the cut, and the split face is now two
	// quads, for 2*(5-2) + 2*2 + 3*2 triangles.
	if n := triangles.NumTriangles(); n != 16 {
		t.Errorf("expected 16 triangles but got %d", n)
	}
}
