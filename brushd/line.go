package brushd

import "github.com/unixpickle/model3d/model3d"

// A Line is a segment parameterized from Start (t=0) to End (t=1).
type Line struct {
	Start model3d.Coord3D
	End   model3d.Coord3D
}

func (l Line) Direction() model3d.Coord3D {
	return l.End.Sub(l.Start)
}

// Lerp computes the point at parameter t along the line.
func (l Line) Lerp(t float64) model3d.Coord3D {
	return l.Start.Add(l.Direction().Scale(t))
}

// InverseLerp computes the parameter of the projection of c onto the line.
//
// For a degenerate line where Start == End, this returns 0.
func (l Line) InverseLerp(c model3d.Coord3D) float64 {
	d := l.Direction()
	norm2 := d.Dot(d)
	if norm2 == 0 {
		return 0
	}
	return c.Sub(l.Start).Dot(d) / norm2
}

// Project finds the closest point to c on the infinite line.
func (l Line) Project(c model3d.Coord3D) model3d.Coord3D {
	return l.Lerp(l.InverseLerp(c))
}

// ClampedProject finds the closest point to c on the segment.
func (l Line) ClampedProject(c model3d.Coord3D) model3d.Coord3D {
	return l.Lerp(Clamp(l.InverseLerp(c), 0, 1))
}
