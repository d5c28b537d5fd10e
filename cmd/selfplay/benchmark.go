package main

import (
	"fmt"
	"time"

	"checkers/internal/checkers"
)

type perftStats struct {
	Nodes    int64
	Captures int64
	Chains   int64
	Unique   map[uint64]struct{}
}

func perft(pos *checkers.Position, depth int, st *perftStats) {
	if depth == 0 {
		st.Nodes++
		st.Unique[pos.Hash] = struct{}{}
		return
	}
	for _, m := range pos.LegalMoves() {
		next := pos.ApplyMove(m)
		if depth == 1 {
			if m.IsCapture() {
				st.Captures++
			}
			if next.Turn.IsContinuation() {
				st.Chains++
			}
		}
		perft(next, depth-1, st)
	}
}

// runPerft prints leaf counts per depth from the initial position.
func runPerft(maxDepth int) {
	fmt.Printf("%5s %12s %10s %10s %10s %10s\n", "depth", "nodes", "unique", "captures", "chains", "time")
	for d := 1; d <= maxDepth; d++ {
		st := &perftStats{Unique: make(map[uint64]struct{})}
		start := time.Now()
		perft(checkers.NewInitialPosition(), d, st)
		fmt.Printf("%5d %12d %10d %10d %10d %10v\n", d, st.Nodes, len(st.Unique), st.Captures, st.Chains, time.Since(start).Round(time.Millisecond))
	}
}
