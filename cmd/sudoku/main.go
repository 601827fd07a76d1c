// Command sudoku reads a 9x9 puzzle from standard input and solves it via
// exact cover.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/kjhughes/xcover/internal/sudoku"
	"github.com/mattn/go-isatty"
)

func main() {
	if isStdinTTY() {
		fmt.Println("Enter initial board as 9 lines of 9 characters.")
		fmt.Println("Use any character other than the digits 1-9 for empty cells.")
		fmt.Println("(Ctrl+D to finish on Unix/Linux, Ctrl+Z then Enter on Windows):")
	}

	p := sudoku.PuzzleFromFile(os.Stdin)
	solved, err := p.Solve()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if solved {
		color.HiWhite("\nSolution:")
	} else {
		color.HiWhite("\nNo solution exists. Last attempted state:")
	}
	p.Print()

	if !solved {
		fmt.Println()
		p.PrintUnsolvedCounts()
		os.Exit(1)
	}
}

func isStdinTTY() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
