// Command queens solves the N-Queens problem via exact cover.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/kjhughes/xcover/internal/queens"
)

func main() {
	n := flag.Int("n", 8, "board size")
	countOnly := flag.Bool("count", false, "print only the number of distinct solutions")
	flag.Parse()

	if *countOnly {
		count, err := queens.Count(*n, 0)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		fmt.Printf("%d\n", count)
		return
	}

	solution, ok, err := queens.Solve(*n)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	if !ok {
		color.HiRed("no solution for n=%d", *n)
		os.Exit(1)
	}

	board := make([][]bool, *n)
	for i := range board {
		board[i] = make([]bool, *n)
	}
	for _, p := range solution {
		board[p.Row][p.Col] = true
	}

	for _, row := range board {
		for _, occupied := range row {
			if occupied {
				color.New(color.FgHiYellow).Print("Q ")
			} else {
				color.New(color.FgHiBlack).Print(". ")
			}
		}
		fmt.Println()
	}
}
