package brushd

import (
	"sync"

	"github.com/unixpickle/model3d/model3d"
)

var unitCube struct {
	once sync.Once
	mesh *Mesh
}

// UnitCube gets a shared cube mesh spanning -0.5 to 0.5 on every axis.
//
// The result is shared between all callers and must not be modified. Use
// Clone() to get a mesh that can be split.
func UnitCube() *Mesh {
	unitCube.once.Do(func() {
		unitCube.mesh = NewMeshRect(model3d.XYZ(-0.5, -0.5, -0.5), model3d.XYZ(0.5, 0.5, 0.5))
	})
	return unitCube.mesh
}

// NewMeshRect creates a box mesh from the bounds.
func NewMeshRect(min, max model3d.Coord3D) *Mesh {
	return FromPlanes(RectPlanes(min, max))
}

// RectPlanes gets the six planes bounding a box, ordered +X, -X, +Y, -Y, +Z,
// -Z.
func RectPlanes(min, max model3d.Coord3D) []Plane {
	minArr, maxArr := min.Array(), max.Array()
	res := make([]Plane, 0, 6)
	for axis := 0; axis < 3; axis++ {
		var axCoordArr [3]float64
		axCoordArr[axis] = 1
		axCoord := model3d.NewCoord3DArray(axCoordArr)
		res = append(
			res,
			Plane{Normal: axCoord, Distance: maxArr[axis]},
			Plane{Normal: axCoord.Scale(-1), Distance: -minArr[axis]},
		)
	}
	return res
}
