package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/unixpickle/brush-d/brushd"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
)

func main() {
	var face int
	var splitNormal string
	var splitDistance float64
	flag.IntVar(&face, "face", -1, "face to split before exporting (-1 for none)")
	flag.StringVar(&splitNormal, "split-normal", "1,0,0", "normal of the splitting plane as x,y,z")
	flag.Float64Var(&splitDistance, "split-distance", 0, "distance of the splitting plane")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: brush_to_stl [flags] <input.json|input.bin> <output.stl>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath, outputPath := args[0], args[1]

	log.Println("Loading brush...")
	planes, err := brushd.LoadPlanes(inputPath)
	essentials.Must(err)
	mesh := brushd.FromPlanes(planes)
	essentials.Must(mesh.Check())

	if face >= 0 {
		if face >= mesh.NumFaces() {
			essentials.Die(fmt.Sprintf("face %d out of range (brush has %d faces)", face,
				mesh.NumFaces()))
		}
		normal, err := parseCoord(splitNormal)
		essentials.Must(err)
		plane := brushd.Plane{Normal: normal.Normalize(), Distance: splitDistance}
		log.Printf("Splitting face %d...", face)
		newFace, err := mesh.Split(brushd.FaceID(face), plane)
		if err != nil {
			log.Printf(" => no cut: %v", err)
		} else {
			log.Printf(" => created face %d", newFace)
		}
	}

	log.Println("Writing output...")
	essentials.Must(mesh.TriangleMesh().SaveGroupedSTL(outputPath))
}

func parseCoord(s string) (model3d.Coord3D, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return model3d.Coord3D{}, fmt.Errorf("expected three components in %q", s)
	}
	var values [3]float64
	for i, p := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return model3d.Coord3D{}, err
		}
		values[i] = x
	}
	return model3d.NewCoord3DArray(values), nil
}
