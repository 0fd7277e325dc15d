package serialize

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/simplicial/filtration"
)

// DumpBoundaryMatrix writes f's combined boundary matrix as one line per
// column, tokens "k i0 i1 ... ik" where k is the column's cell dimension
// and i_j are the positions of its faces. A 0-dimensional cell has no
// faces, so its line is just "0".
//
// Positions are 1-based unless oneBased is false, in which case every
// position is emitted as (position - 1).
func DumpBoundaryMatrix(w io.Writer, f *filtration.Filtration, oneBased bool) error {
	entries, err := f.Entries()
	if err != nil {
		return fmt.Errorf("serialize.DumpBoundaryMatrix: %w", err)
	}
	cols, err := f.CombinedBoundaryMatrix(false)
	if err != nil {
		return fmt.Errorf("serialize.DumpBoundaryMatrix: %w", err)
	}
	if len(cols) != len(entries) {
		return fmt.Errorf("serialize.DumpBoundaryMatrix: column/entry count mismatch")
	}

	bw := bufio.NewWriter(w)
	for i, col := range cols {
		tokens := make([]string, 0, len(col)+1)
		tokens = append(tokens, strconv.Itoa(entries[i].Cell.Dim()))
		for _, pos := range col {
			if !oneBased {
				pos--
			}
			tokens = append(tokens, strconv.Itoa(pos))
		}
		if _, err := bw.WriteString(strings.Join(tokens, " ")); err != nil {
			return fmt.Errorf("serialize.DumpBoundaryMatrix: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("serialize.DumpBoundaryMatrix: %w", err)
		}
	}

	return bw.Flush()
}
