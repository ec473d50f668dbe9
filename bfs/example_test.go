package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/npuzzle/bfs"
	"github.com/katalvlaran/npuzzle/board"
)

// ExampleMinMoves computes the exact optimum for a board two blank moves
// from the goal.
func ExampleMinMoves() {
	root, err := board.New([]int{1, 2, 0, 3, 4, 5, 6, 7, 8})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	n, err := bfs.MinMoves(root)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(n)
	// Output:
	// 2
}

// ExampleMinMoves_unreachable shows the unsolvable-permutation outcome.
func ExampleMinMoves_unreachable() {
	root, err := board.New([]int{0, 2, 1, 3})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	_, err = bfs.MinMoves(root)
	fmt.Println(err)
	// Output:
	// bfs: goal not reachable from root
}
