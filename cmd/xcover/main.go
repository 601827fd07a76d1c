// Command xcover demonstrates the generic exact-cover engine directly on
// Knuth's canonical six-row example from "Dancing Links", independent of
// any of the puzzle reductions built on top of it.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/kjhughes/xcover/internal/cover"
	"github.com/mattn/go-colorable"
)

func main() {
	out := colorable.NewColorableStdout()
	bold := color.New(color.Bold)

	rows := []cover.Row[string, string]{
		{Items: []string{"1", "4", "7"}, Payload: "A"},
		{Items: []string{"1", "4"}, Payload: "B"},
		{Items: []string{"4", "5", "7"}, Payload: "C"},
		{Items: []string{"3", "5", "6"}, Payload: "D"},
		{Items: []string{"2", "3", "6", "7"}, Payload: "E"},
		{Items: []string{"2", "7"}, Payload: "F"},
	}

	bold.Fprintln(out, "Knuth's exact cover example")
	fmt.Fprintln(out, "Universe: {1,2,3,4,5,6,7}, six candidate rows A-F")
	fmt.Fprintln(out)

	s, err := cover.New(rows)
	if err != nil {
		color.New(color.FgRed).Fprintln(out, "build error:", err)
		return
	}

	count := 0
	for solution := range s.Solutions() {
		count++
		color.New(color.FgGreen).Fprintf(out, "solution %d: %v\n", count, solution)
	}

	fmt.Fprintf(out, "\n%s solutions found\n", color.New(color.FgCyan).Sprint(count))
}
