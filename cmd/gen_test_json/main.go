package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"checkers/internal/checkers"
	"checkers/internal/log2"
)

// TestCase is one regression record: the full successor set of a position
// plus one rejected proposal.
type TestCase struct {
	Position   string   `json:"position"`
	Color      string   `json:"color"`
	Successors []string `json:"successors"`
	Rejected   string   `json:"rejected"` // 由对手颜色提交时必须失败
}

func main() {
	numGames := flag.Int("games", 10, "random games to sample")
	maxPlies := flag.Int("maxplies", 500, "ply cap per game")
	out := flag.String("out", "move_gen_test_data.json", "output file")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	log2.Configure("info", true)
	rng := rand.New(rand.NewSource(*seed))

	var testCases []TestCase
	for g := 0; g < *numGames; g++ {
		pos := checkers.NewInitialPosition()
		for ply := 0; ply < *maxPlies; ply++ {
			moves := pos.LegalMoves()
			if len(moves) == 0 {
				break
			}
			succ := pos.LegalSuccessors()
			testCases = append(testCases, TestCase{
				Position:   pos.Encode(),
				Color:      pos.Turn.Color().String(),
				Successors: succ,
				Rejected:   succ[rng.Intn(len(succ))],
			})

			pos = pos.ApplyMove(moves[rng.Intn(len(moves))])
		}
	}

	file, err := json.MarshalIndent(testCases, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("marshal test cases")
	}
	if err := os.WriteFile(*out, file, 0o644); err != nil {
		log.Fatal().Err(err).Str("file", *out).Msg("write test cases")
	}
	fmt.Printf("Generated %d test cases from %d random games to %s\n", len(testCases), *numGames, *out)
}
