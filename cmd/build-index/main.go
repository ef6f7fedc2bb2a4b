// Command build-index reads a whitespace-separated "subject predicate
// object" triple file and writes out a serialized Ring.
//
// Grounded on _examples/original_source/src/build-index.cpp's main():
// same two positional arguments (dataset, type) and the same
// dataset+"."+type output naming convention, reimplemented with
// github.com/urfave/cli/v2 the way cmd/poly/main.go drives bebop-poly's
// own command line surface.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/bebop/ring/ring"
)

func main() {
	run(os.Args)
}

func run(args []string) {
	app := application()
	if err := app.Run(args); err != nil {
		log.Fatal(err)
	}
}

// ringTypes maps each type argument build-index.cpp accepted to
// whether it builds a mutable Ring. c-ring and ring-sel name
// alternative static encodings (a compressed C-array, a
// select-accelerated rank structure) that this module does not
// distinguish at the storage level - see DESIGN.md's "CLI type ->
// backing mapping" entry - so all three static names share one code
// path, and likewise for the three dynamic names.
var ringTypes = map[string]bool{
	"ring":           false,
	"c-ring":         false,
	"ring-sel":       false,
	"ring-dyn-basic": true,
	"ring-dyn":       true,
	"ring-dyn-map":   true,
}

func application() *cli.App {
	return &cli.App{
		Name:      "build-index",
		Usage:     "Build a Ring index from a triple dataset.",
		ArgsUsage: "<dataset> <ring|c-ring|ring-sel|ring-dyn-basic|ring-dyn|ring-dyn-map>",
		Action:    buildIndexCommand,
	}
}

func buildIndexCommand(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("Usage: build-index %s", c.Command.ArgsUsage)
	}

	dataset := c.Args().Get(0)
	typ := c.Args().Get(1)

	dynamic, known := ringTypes[typ]
	if !known {
		return fmt.Errorf("Usage: build-index <dataset> [ring|c-ring|ring-sel|ring-dyn-basic|ring-dyn|ring-dyn-map], got %q", typ)
	}

	f, err := os.Open(dataset)
	if err != nil {
		return err
	}
	defer f.Close()

	triples, err := readTriples(f)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "--Indexing %d triples\n", len(triples))

	var idx *ring.Ring
	if dynamic {
		idx, err = ring.NewDynamic(triples)
	} else {
		idx, err = ring.New(triples)
	}
	if err != nil {
		return err
	}

	outputName := dataset + "." + typ
	if typ == "ring-dyn-map" {
		// build-index.cpp writes ring-dyn-map to the same ".ring-dyn"
		// suffix as ring-dyn; preserved here for output compatibility.
		outputName = dataset + ".ring-dyn"
	}

	out, err := os.Create(outputName)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := idx.Save(out); err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Index saved to %s\n", outputName)
	return nil
}

// readTriples parses whitespace-separated "s p o" uint64 triples,
// mirroring build-index.cpp's `do { ifs >> s >> p >> o; ... } while
// (!ifs.eof())` loop.
func readTriples(r io.Reader) ([]ring.Triple, error) {
	br := bufio.NewReader(r)
	var triples []ring.Triple
	for {
		var s, p, o uint64
		n, err := fmt.Fscan(br, &s, &p, &o)
		if n == 3 {
			triples = append(triples, ring.Triple{S: s, P: p, O: o})
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			if n == 0 {
				break
			}
			return nil, fmt.Errorf("build-index: parsing dataset: %w", err)
		}
	}
	return triples, nil
}
