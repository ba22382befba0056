package main

// dpdb-solve runs iterative-deepening A* on 24-puzzle instances read
// from standard input, using the four-pattern disjoint database
// heuristic and its reflection.
//
// Usage: dpdb-solve [-h0 path] [-h1 path] [-n count] [-stats path]
//
// Each instance is 25 whitespace-separated integers, the tile on each
// square in row-major order, 0 marking the blank. For every instance the
// tool prints the state, one "threshold generated" line per iteration,
// a "problem threshold total" summary, and the tile sequence of the
// solution.

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/dpdb/pdb"
	"github.com/grailbio/dpdb/solver"
)

var (
	h0Flag = flag.String("h0", "pat24.1256712.tab",
		"Database for pattern {1 2 5 6 7 12} and its reflections.")
	h1Flag = flag.String("h1", "pat24.34891314.tab",
		"Database for pattern {3 4 8 9 13 14}, its rotations, and their reflections.")
	nFlag = flag.Int("n", 0,
		"Number of instances to solve. 0 means read until EOF.")
	statsFlag = flag.String("stats", "",
		"If set, write one TSV row per instance: problem, threshold, generated.")
)

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `Usage: dpdb-solve [flags] < instances

Solves 24-puzzle instances from standard input with IDA* under the
Korf-Felner disjoint pattern database heuristic. The two database files
are produced by dpdb-build.
`)
		flag.PrintDefaults()
	}
	shutdown := grail.Init()
	defer shutdown()
	ctx := vcontext.Background()

	h0, err := pdb.Load(ctx, *h0Flag)
	if err != nil {
		log.Fatalf("load %s: %v", *h0Flag, err)
	}
	log.Printf("pattern 1 2 5 6 7 12 read in")
	h1, err := pdb.Load(ctx, *h1Flag)
	if err != nil {
		log.Fatalf("load %s: %v", *h1Flag, err)
	}
	log.Printf("pattern 3 4 8 9 13 14 read in")

	sv, err := solver.New(h0, h1)
	if err != nil {
		log.Fatalf("solver: %v", err)
	}

	opts := solver.RunOpts{MaxProblems: *nFlag}
	if *statsFlag != "" {
		out, err := file.Create(ctx, *statsFlag)
		if err != nil {
			log.Fatalf("create %s: %v", *statsFlag, err)
		}
		statsTSV := tsv.NewWriter(out.Writer(ctx))
		statsTSV.WriteString("PROBLEM\tTHRESHOLD\tGENERATED")
		if err := statsTSV.EndLine(); err != nil {
			log.Fatalf("write %s: %v", *statsFlag, err)
		}
		opts.OnProblem = func(res solver.Result) {
			statsTSV.WriteUint32(uint32(res.Problem))
			statsTSV.WriteUint32(uint32(res.Threshold))
			statsTSV.WriteString(strconv.FormatInt(res.Generated, 10))
			if err := statsTSV.EndLine(); err != nil {
				log.Fatalf("write %s: %v", *statsFlag, err)
			}
		}
		defer func() {
			if err := statsTSV.Flush(); err != nil {
				log.Fatalf("flush %s: %v", *statsFlag, err)
			}
			if err := out.Close(ctx); err != nil {
				log.Fatalf("close %s: %v", *statsFlag, err)
			}
		}()
	}

	grand, err := sv.RunProblems(os.Stdin, os.Stdout, opts)
	if err != nil {
		log.Fatalf("solve: %v", err)
	}
	fmt.Printf("grandtotal: %d\n", grand)
}
