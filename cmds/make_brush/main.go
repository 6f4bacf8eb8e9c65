package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/unixpickle/brush-d/brushd"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
)

func main() {
	var size float64
	var numRandom int
	var seed int64
	var concurrency int
	var attempts int
	flag.Float64Var(&size, "size", 1, "side length of the bounding box")
	flag.IntVar(&numRandom, "random-planes", 0, "number of random planes to cut the box with")
	flag.Int64Var(&seed, "seed", 0, "random seed")
	flag.IntVar(&attempts, "attempts", 16, "number of random brushes to build, keeping the "+
		"one with the most vertices")
	flag.IntVar(&concurrency, "concurrency", 0, "maximum goroutines for building brushes")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: make_brush [flags] <output.json|output.bin>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	outputPath := args[0]

	half := size / 2
	box := brushd.RectPlanes(model3d.XYZ(-half, -half, -half), model3d.XYZ(half, half, half))
	if numRandom == 0 {
		attempts = 1
	}

	log.Println("Creating candidate brushes...")
	gen := rand.New(rand.NewSource(seed))
	candidates := make([][]brushd.Plane, attempts)
	for i := range candidates {
		planes := append([]brushd.Plane{}, box...)
		for j := 0; j < numRandom; j++ {
			normal := model3d.XYZ(gen.NormFloat64(), gen.NormFloat64(), gen.NormFloat64())
			planes = append(planes, brushd.Plane{
				Normal:   normal.Normalize(),
				Distance: half * (0.5 + 0.5*gen.Float64()),
			})
		}
		candidates[i] = planes
	}
	meshes := brushd.FromPlanesBatch(candidates, concurrency)
	best := 0
	for i, m := range meshes {
		if m.NumVertices() > meshes[best].NumVertices() {
			best = i
		}
	}
	log.Printf(" => best brush has %d vertices", meshes[best].NumVertices())

	log.Println("Writing output...")
	writer := brushd.WritePlanes
	if strings.ToLower(filepath.Ext(outputPath)) == ".json" {
		writer = brushd.WritePlanesJSON
	}
	essentials.Must(brushd.Save(outputPath, func(w io.Writer) error {
		return writer(w, candidates[best])
	}))
}
