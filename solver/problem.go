package solver

import (
	"bufio"
	"fmt"
	"io"
	"unicode"

	"github.com/grailbio/base/log"
	"github.com/grailbio/dpdb/board"
)

// Result is one solved instance, numbered in input order.
type Result struct {
	Problem int
	State   board.State
	Solution
}

// RunOpts controls RunProblems.
type RunOpts struct {
	// MaxProblems caps the number of instances read. <=0 means read
	// until EOF.
	MaxProblems int
	// OnProblem, if non-nil, is called after each solved instance.
	OnProblem func(Result)
}

// RunProblems reads instances from r and solves them in order, writing
// the classic report to w: the initial state, a "threshold generated"
// line per iteration, a "problem threshold total" summary, and the move
// sequence. It returns the grand total of states generated.
func (sv *Solver) RunProblems(r io.Reader, w io.Writer, optList ...RunOpts) (int64, error) {
	opts := RunOpts{}
	if len(optList) > 1 {
		log.Panicf("more than one RunOpts: %v", optList)
	}
	if len(optList) > 0 {
		opts = optList[0]
	}
	br := bufio.NewReader(r)
	var grand int64
	for problem := 1; opts.MaxProblems <= 0 || problem <= opts.MaxProblems; problem++ {
		more, err := skipSpace(br)
		if err != nil {
			return grand, err
		}
		if !more {
			break
		}
		state, err := board.Parse(br)
		if err != nil {
			return grand, err
		}
		for _, tile := range state {
			fmt.Fprintf(w, "%2d ", tile)
		}
		fmt.Fprintln(w)

		sol, err := sv.Solve(state, func(thresh int, generated int64) {
			fmt.Fprintf(w, "%3d %12d\n", thresh, generated)
		})
		if err != nil {
			return grand, err
		}
		grand += sol.Generated
		fmt.Fprintf(w, "%d %d %d\n\n", problem, sol.Threshold, sol.Generated)
		for _, tile := range sol.Moves {
			fmt.Fprintf(w, "%d ", tile)
		}
		fmt.Fprint(w, "\n\n")
		if opts.OnProblem != nil {
			opts.OnProblem(Result{Problem: problem, State: state, Solution: sol})
		}
	}
	return grand, nil
}

// skipSpace consumes whitespace and reports whether input remains.
func skipSpace(br *bufio.Reader) (bool, error) {
	for {
		ch, _, err := br.ReadRune()
		if err == io.EOF {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if !unicode.IsSpace(ch) {
			if err := br.UnreadRune(); err != nil {
				return false, err
			}
			return true, nil
		}
	}
}
