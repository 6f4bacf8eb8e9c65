package brushd

import (
	"math"

	"github.com/unixpickle/model3d/model3d"
)

// A PlaneSide classifies a point relative to a Plane.
type PlaneSide int

const (
	Inside PlaneSide = iota
	Outside
	OnPlane
)

func (p PlaneSide) String() string {
	switch p {
	case Inside:
		return "inside"
	case Outside:
		return "outside"
	case OnPlane:
		return "on_plane"
	}
	return "invalid"
}

// A Plane is the set of points c where c.Dot(Normal) == Distance.
//
// The points where c.Dot(Normal) < Distance make up the inside of the
// plane, so that a brush is the intersection of the insides of its planes.
type Plane struct {
	Normal   model3d.Coord3D `json:"normal"`
	Distance float64         `json:"distance"`
}

// NewPlanePoint creates the plane with the given normal passing through a
// point.
func NewPlanePoint(normal, point model3d.Coord3D) Plane {
	return Plane{Normal: normal, Distance: normal.Dot(point)}
}

// DistanceTo computes the signed distance from the plane to c, which is
// negative for points inside the plane.
//
// The result is only a true distance if the normal has unit length.
func (p Plane) DistanceTo(c model3d.Coord3D) float64 {
	return p.Normal.Dot(c) - p.Distance
}

// Side classifies c using DefaultTolerance.
func (p Plane) Side(c model3d.Coord3D) PlaneSide {
	switch DefaultTolerance.Sign(p.DistanceTo(c)) {
	case -1:
		return Inside
	case 1:
		return Outside
	}
	return OnPlane
}

// Flip returns the same plane with the opposite orientation.
func (p Plane) Flip() Plane {
	return Plane{Normal: p.Normal.Scale(-1), Distance: -p.Distance}
}

// Constraint converts the plane's inside into a model3d half-space.
func (p Plane) Constraint() *model3d.LinearConstraint {
	return &model3d.LinearConstraint{Normal: p.Normal, Max: p.Distance}
}

// RayIntersection finds the scale t such that origin+direction*t lies on
// the plane.
//
// The second return value is false if the ray is parallel to the plane or
// the intersection is behind the origin.
func (p Plane) RayIntersection(origin, direction model3d.Coord3D) (float64, bool) {
	dot := p.Normal.Dot(direction)
	if math.Abs(dot) < Epsilon {
		return 0, false
	}
	t := -p.DistanceTo(origin) / dot
	if t < 0 {
		return 0, false
	}
	return t, true
}

// FindIntersection computes the single point shared by three planes.
//
// If the normals are coplanar, there is no single point and false is
// returned.
func FindIntersection(p1, p2, p3 Plane) (model3d.Coord3D, bool) {
	c23 := p2.Normal.Cross(p3.Normal)
	det := p1.Normal.Dot(c23)
	if math.Abs(det) < Epsilon {
		return model3d.Coord3D{}, false
	}
	c31 := p3.Normal.Cross(p1.Normal)
	c12 := p1.Normal.Cross(p2.Normal)
	sum := c23.Scale(p1.Distance).Add(c31.Scale(p2.Distance)).Add(c12.Scale(p3.Distance))
	return sum.Scale(1 / det), true
}

// FindDistanceRayIntersection finds the point where the segment from v1 to
// v2 crosses a plane, given the signed distances d1 and d2 of the endpoints
// to that plane.
//
// The distances must have opposite signs.
func FindDistanceRayIntersection(v1 model3d.Coord3D, d1 float64, v2 model3d.Coord3D,
	d2 float64) model3d.Coord3D {
	// With x = v1 + t*(v2-v1), the distance is linear in t, going from d1 at
	// t=0 to d2 at t=1, so it is zero at t = d1/(d1-d2).
	alpha := d1 / (d1 - d2)
	return v1.Add(v2.Sub(v1).Scale(alpha))
}

// PlanesPolytope converts a list of planes into the equivalent polytope.
func PlanesPolytope(planes []Plane) model3d.ConvexPolytope {
	res := make(model3d.ConvexPolytope, len(planes))
	for i, p := range planes {
		res[i] = p.Constraint()
	}
	return res
}
