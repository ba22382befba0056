package main

// dpdb-build performs the retrograde breadth-first search for one 6-tile
// pattern of the 24-puzzle and writes the resulting database.
//
// Usage: dpdb-build [flags] [t0 t1 t2 t3 t4 t5]
//
// Without positional arguments the first Korf-Felner pattern
// {1 2 5 6 7 12} is built. Expect a full build to touch every reachable
// (placement, blank) state, tracked in a 25^7-bit visited set; budget
// roughly 1GiB of memory and a
// few hundred GiB of frontier traffic through the queue files.

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/dpdb/board"
	"github.com/grailbio/dpdb/pdb"
)

var (
	outputFlag = flag.String("output", "",
		"Database output path. Empty means pat24.<tiles>.tab in the working directory.")
	tmpDirFlag = flag.String("tmp-dir", "",
		"Directory for the frontier queue files q1 and q2. Empty means the working directory.")
	blockSizeFlag = flag.Int("block-size", pdb.DefaultBlockSize,
		"Nodes per buffered frontier block.")
)

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `Usage: dpdb-build [flags] [t0 t1 t2 t3 t4 t5]

Builds the disjoint pattern database for the six given tiles by
retrograde breadth-first search from the goal placement, and writes it
as a dense table of 25^6 bytes. Without arguments, pattern
{1 2 5 6 7 12} is built.
`)
		flag.PrintDefaults()
	}
	shutdown := grail.Init()
	defer shutdown()

	tiles := append([]int(nil), board.Patterns[0][:]...)
	if args := flag.Args(); len(args) > 0 {
		if len(args) != board.PatternSize {
			flag.Usage()
			os.Exit(1)
		}
		tiles = tiles[:0]
		for _, arg := range args {
			t, err := strconv.Atoi(arg)
			if err != nil {
				log.Fatalf("pattern tile %q: %v", arg, err)
			}
			tiles = append(tiles, t)
		}
	}

	b, err := pdb.NewBuilder(tiles, pdb.BuilderOpts{Dir: *tmpDirFlag, BlockSize: *blockSizeFlag})
	if err != nil {
		log.Fatalf("builder for pattern %v: %v", tiles, err)
	}
	if err := b.Run(); err != nil {
		log.Fatalf("search for pattern %v: %v", tiles, err)
	}
	out := *outputFlag
	if out == "" {
		out = pdb.TableName(tiles)
	}
	sum, err := b.WriteTable(vcontext.Background(), out)
	if err != nil {
		log.Fatalf("write %v: %v", out, err)
	}
	log.Printf("%s: wrote %d entries, seahash %016x", out, len(b.Table()), sum)
	if err := b.Close(); err != nil {
		log.Fatalf("cleanup: %v", err)
	}
}
