package cover

import "fmt"

// BuildError reports a malformed row supplied to New or NewSecondary. Rows
// are 0-indexed in the order they were passed in.
type BuildError struct {
	Row int
	Msg string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("cover: row %d: %s", e.Row, e.Msg)
}

func emptyRowError(row int) error {
	return &BuildError{Row: row, Msg: "empty row"}
}

func duplicateItemError[L comparable](row int, label L) error {
	return &BuildError{Row: row, Msg: fmt.Sprintf("duplicate item %v", label)}
}
