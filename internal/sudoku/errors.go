package sudoku

import (
	"fmt"
	"os"
	"strings"
)

func puzzleStateError(msg string) {
	fatalError("invalid puzzle state", msg)
}

func fatalError(msgs ...string) {
	msg := strings.Join(msgs, ": ")
	fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	os.Exit(1)
}
