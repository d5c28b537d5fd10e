package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"

	"checkers/internal/checkers"
)

func main() {
	pos := checkers.NewInitialPosition()
	fmt.Println("Position:", pos.Encode())
	spew.Dump(pos.Turn)
	moves := pos.LegalMoves()
	fmt.Println("Legal moves:", len(moves))
	spew.Dump(pos.Successors())
}
