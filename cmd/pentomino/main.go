// Command pentomino solves Dana Scott's problem of tiling a center-less
// chessboard with the twelve pentominoes.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/kjhughes/xcover/internal/pentomino"
)

func main() {
	tiling, ok, err := pentomino.Solve()
	if err != nil {
		fmt.Println(color.HiRedString("error: %v", err))
		return
	}
	if !ok {
		fmt.Println(color.HiRedString("no tiling found"))
		return
	}

	fmt.Println(color.HiBlueString("Example tiling:"))
	grid := tiling.Grid()
	for _, row := range grid {
		for _, ch := range row {
			if ch == '.' {
				fmt.Print(color.HiBlackString(". "))
			} else {
				fmt.Printf("%s ", color.HiGreenString(string(ch)))
			}
		}
		fmt.Println()
	}

	fmt.Println()
	count, err := pentomino.Count(0)
	if err != nil {
		fmt.Println(color.HiRedString("error: %v", err))
		return
	}
	fmt.Printf("There are %s unique tilings.\n", color.HiYellowString("%d", count))
}
