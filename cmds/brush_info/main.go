package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/unixpickle/brush-d/brushd"
	"github.com/unixpickle/essentials"
)

func main() {
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: brush_info [flags] <input.json|input.bin>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath := args[0]

	log.Println("Loading planes...")
	planes, err := brushd.LoadPlanes(inputPath)
	essentials.Must(err)

	log.Println("Building brush...")
	mesh := brushd.FromPlanes(planes)

	fmt.Println("Number of planes:", len(planes))
	fmt.Println("Number of faces with a boundary:", len(mesh.Planes()))
	fmt.Println("Number of vertices:", mesh.NumVertices())
	fmt.Println("Number of edges:", len(mesh.Edges()))
	fmt.Println("Bounds min:", mesh.Min())
	fmt.Println("Bounds max:", mesh.Max())
	for _, f := range mesh.Faces() {
		fmt.Printf("Face %d: normal=%v vertices=%d\n", f.ID(), f.Normal(), f.VertexCount())
	}
	if err := mesh.Check(); err != nil {
		fmt.Println("Invalid mesh:", err)
		os.Exit(1)
	}
}
