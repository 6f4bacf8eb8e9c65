package brushd

import (
	"math"
	"math/rand"
	"testing"

	"github.com/unixpickle/model3d/model3d"
)

func TestTolerance(t *testing.T) {
	tol := Tolerance[float64]{Epsilon: 0.1}
	if tol.Cmp(1.0, 1.05) != 0 || tol.Cmp(1.05, 1.0) != 0 {
		t.Error("values within epsilon should be equal")
	}
	if tol.Cmp(1.0, 1.2) != -1 || tol.Cmp(1.2, 1.0) != 1 {
		t.Error("values beyond epsilon should be ordered")
	}
	if tol32 := (Tolerance[float32]{Epsilon: 1e-3}); !tol32.Eq(0.5, 0.5005) {
		t.Error("float32 tolerance should treat close values as equal")
	}
	if tol.Eq(1.0, 1.2) || !tol.Eq(-1.0, -1.09) {
		t.Error("unexpected Eq result")
	}
	if Clamp(-1.0, 0, 1) != 0 || Clamp(2.0, 0, 1) != 1 || Clamp(0.25, 0, 1) != 0.25 {
		t.Error("unexpected clamp result")
	}
}

func TestPlaneSide(t *testing.T) {
	p := Plane{Normal: model3d.Z(1), Distance: 0.5}
	cases := map[model3d.Coord3D]PlaneSide{
		model3d.XYZ(3, -2, 0.4):           Inside,
		model3d.XYZ(3, -2, 0.6):           Outside,
		model3d.XYZ(3, -2, 0.5):           OnPlane,
		model3d.XYZ(3, -2, 0.5+Epsilon/2): OnPlane,
		model3d.XYZ(3, -2, 0.5-Epsilon/2): OnPlane,
	}
	for c, expected := range cases {
		if actual := p.Side(c); actual != expected {
			t.Errorf("point %v should be %s but got %s", c, expected, actual)
		}
	}
	if d := p.DistanceTo(model3d.XYZ(1, 1, 2)); math.Abs(d-1.5) > 1e-8 {
		t.Errorf("unexpected distance: %f", d)
	}
	if p.Flip().Side(model3d.Z(0)) != Outside {
		t.Error("flipped plane should swap sides")
	}
}

func TestFindIntersection(t *testing.T) {
	point, ok := FindIntersection(
		Plane{Normal: model3d.X(1), Distance: 1},
		Plane{Normal: model3d.Y(-1), Distance: 2},
		Plane{Normal: model3d.Z(1), Distance: 3},
	)
	if !ok {
		t.Fatal("expected intersection")
	}
	if point.Dist(model3d.XYZ(1, -2, 3)) > 1e-8 {
		t.Fatalf("unexpected point: %v", point)
	}

	rand.Seed(0)
	for i := 0; i < 1000; i++ {
		planes := [3]Plane{}
		for j := range planes {
			planes[j] = Plane{
				Normal:   model3d.NewCoord3DRandUnit(),
				Distance: rand.NormFloat64(),
			}
		}
		point, ok := FindIntersection(planes[0], planes[1], planes[2])
		if !ok {
			continue
		}
		for j, p := range planes {
			if d := p.DistanceTo(point); math.Abs(d) > 1e-5*(1+point.Norm()) {
				t.Fatalf("point %v is %f away from plane %d", point, d, j)
			}
		}
	}
}

func TestFindIntersectionParallel(t *testing.T) {
	_, ok := FindIntersection(
		Plane{Normal: model3d.X(1), Distance: 1},
		Plane{Normal: model3d.X(-1), Distance: 1},
		Plane{Normal: model3d.Z(1), Distance: 3},
	)
	if ok {
		t.Error("parallel planes should not intersect")
	}
	_, ok = FindIntersection(
		Plane{Normal: model3d.X(1), Distance: 1},
		Plane{Normal: model3d.Y(1), Distance: 1},
		Plane{Normal: model3d.XY(1, 1).Normalize(), Distance: 3},
	)
	if ok {
		t.Error("planes sharing a direction should not intersect")
	}
}

func TestFindDistanceRayIntersection(t *testing.T) {
	rand.Seed(1)
	for i := 0; i < 100; i++ {
		p := Plane{Normal: model3d.NewCoord3DRandUnit(), Distance: rand.NormFloat64()}
		v1 := model3d.NewCoord3DRandNorm()
		v2 := model3d.NewCoord3DRandNorm()
		d1, d2 := p.DistanceTo(v1), p.DistanceTo(v2)
		if (d1 < 0) == (d2 < 0) {
			continue
		}
		point := FindDistanceRayIntersection(v1, d1, v2, d2)
		if math.Abs(p.DistanceTo(point)) > 1e-8 {
			t.Fatalf("point %v is not on the plane", point)
		}
		line := Line{Start: v1, End: v2}
		if param := line.InverseLerp(point); param < 0 || param > 1 {
			t.Fatalf("point is outside of segment: %f", param)
		}
	}
}

func TestPlaneRayIntersection(t *testing.T) {
	p := Plane{Normal: model3d.Z(1), Distance: 2}
	scale, ok := p.RayIntersection(model3d.XYZ(1, 1, 0), model3d.Z(0.5))
	if !ok || math.Abs(scale-4) > 1e-8 {
		t.Errorf("unexpected collision: %f %v", scale, ok)
	}
	if _, ok := p.RayIntersection(model3d.XYZ(1, 1, 0), model3d.Z(-1)); ok {
		t.Error("should not collide behind origin")
	}
	if _, ok := p.RayIntersection(model3d.XYZ(1, 1, 0), model3d.X(1)); ok {
		t.Error("should not collide with a parallel ray")
	}
}

func TestLine(t *testing.T) {
	line := Line{Start: model3d.XYZ(1, 0, 0), End: model3d.XYZ(3, 0, 0)}
	if line.Lerp(0.5) != model3d.XYZ(2, 0, 0) {
		t.Errorf("unexpected lerp: %v", line.Lerp(0.5))
	}
	if x := line.InverseLerp(model3d.XYZ(2.5, 7, -1)); math.Abs(x-0.75) > 1e-8 {
		t.Errorf("unexpected inverse lerp: %f", x)
	}
	if p := line.Project(model3d.XYZ(5, 1, 1)); p.Dist(model3d.X(5)) > 1e-8 {
		t.Errorf("unexpected projection: %v", p)
	}
	if p := line.ClampedProject(model3d.XYZ(5, 1, 1)); p.Dist(model3d.X(3)) > 1e-8 {
		t.Errorf("unexpected clamped projection: %v", p)
	}
	if p := line.ClampedProject(model3d.XYZ(-5, 1, 1)); p.Dist(model3d.X(1)) > 1e-8 {
		t.Errorf("unexpected clamped projection: %v", p)
	}
	degenerate := Line{Start: model3d.X(1), End: model3d.X(1)}
	if degenerate.InverseLerp(model3d.Y(1)) != 0 {
		t.Error("degenerate line should project to its start")
	}
}
