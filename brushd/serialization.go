package brushd

import (
	"encoding/binary"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// maxPreallocPlanes limits the slice capacity reserved from an untrusted
// plane count.
const maxPreallocPlanes = 1 << 16

// WritePlanes serializes a plane list in a 64-bit precision binary format.
func WritePlanes(w io.Writer, planes []Plane) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(planes))); err != nil {
		return errors.Wrap(err, "write planes")
	}
	for _, p := range planes {
		err := binary.Write(w, binary.LittleEndian, []float64{
			p.Normal.X,
			p.Normal.Y,
			p.Normal.Z,
			p.Distance,
		})
		if err != nil {
			return errors.Wrap(err, "write planes")
		}
	}
	return nil
}

// ReadPlanes reads the output written by WritePlanes.
func ReadPlanes(r io.Reader) ([]Plane, error) {
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, errors.Wrap(err, "read planes")
	}
	capacity := int(count)
	if capacity > maxPreallocPlanes {
		capacity = maxPreallocPlanes
	}
	res := make([]Plane, 0, capacity)
	for i := 0; i < int(count); i++ {
		var values [4]float64
		if err := binary.Read(r, binary.LittleEndian, &values); err != nil {
			return nil, errors.Wrapf(err, "read planes: plane %d", i)
		}
		res = append(res, Plane{
			Normal:   model3d.XYZ(values[0], values[1], values[2]),
			Distance: values[3],
		})
	}
	return res, nil
}

// WritePlanesJSON encodes a plane list as a JSON array.
func WritePlanesJSON(w io.Writer, planes []Plane) error {
	if err := json.NewEncoder(w).Encode(planes); err != nil {
		return errors.Wrap(err, "write planes")
	}
	return nil
}

// ReadPlanesJSON decodes the output written by WritePlanesJSON.
func ReadPlanesJSON(r io.Reader) ([]Plane, error) {
	var res []Plane
	if err := json.NewDecoder(r).Decode(&res); err != nil {
		return nil, errors.Wrap(err, "read planes")
	}
	return res, nil
}

// WriteMesh serializes a mesh as the planes of its non-empty faces, using
// the format of WritePlanes.
//
// The half-edge structure is not stored, so the pieces of a face cut by
// Split() are merged back into one plane.
func WriteMesh(w io.Writer, m *Mesh) error {
	var planes []Plane
	for _, p := range m.Planes() {
		if !containsPlane(planes, p) {
			planes = append(planes, p)
		}
	}
	if err := WritePlanes(w, planes); err != nil {
		return errors.Wrap(err, "write mesh")
	}
	return nil
}

func containsPlane(planes []Plane, p Plane) bool {
	for _, other := range planes {
		if other.Normal.Dist(p.Normal) < Epsilon && DefaultTolerance.Eq(other.Distance, p.Distance) {
			return true
		}
	}
	return false
}

// ReadMesh reads the planes written by WriteMesh and rebuilds the mesh with
// FromPlanes.
func ReadMesh(r io.Reader) (*Mesh, error) {
	planes, err := ReadPlanes(r)
	if err != nil {
		return nil, errors.Wrap(err, "read mesh")
	}
	return FromPlanes(planes), nil
}

// Load opens a file and decodes it with the given reader function.
func Load[T any](path string, f func(r io.Reader) (T, error)) (T, error) {
	r, err := os.Open(path)
	if err != nil {
		var zero T
		return zero, err
	}
	defer r.Close()
	return f(r)
}

// Save creates a file and encodes it with the given writer function.
func Save(path string, f func(w io.Writer) error) error {
	w, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := f(w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// LoadPlanes reads a plane list, using the JSON format for files with a
// .json extension and the binary format otherwise.
func LoadPlanes(path string) ([]Plane, error) {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return Load(path, ReadPlanesJSON)
	}
	return Load(path, ReadPlanes)
}
