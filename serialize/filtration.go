package serialize

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/simplicial/filtration"
	"github.com/katalvlaran/simplicial/scx"
	"github.com/katalvlaran/simplicial/simplex"
)

// WriteFiltration writes f to w in the line-oriented text format: each
// line is the cell's comma-separated vertex labels followed by its
// filtration value, one line per T entry in order.
//
// Stage 1 (Gather): read f's entries in T order.
// Stage 2 (Emit): render each entry as "v0,v1,...,vk,value".
func WriteFiltration(w io.Writer, f *filtration.Filtration) error {
	entries, err := f.Entries()
	if err != nil {
		return fmt.Errorf("serialize.WriteFiltration: %w", err)
	}

	bw := bufio.NewWriter(w)
	for _, e := range entries {
		verts := e.Cell.Vertices()
		fields := make([]string, 0, len(verts)+1)
		for _, v := range verts {
			fields = append(fields, strconv.Itoa(v))
		}
		fields = append(fields, strconv.FormatFloat(e.Value, 'g', -1, 64))
		if _, err := bw.WriteString(strings.Join(fields, ",")); err != nil {
			return fmt.Errorf("serialize.WriteFiltration: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("serialize.WriteFiltration: %w", err)
		}
	}

	return bw.Flush()
}

// ReadFiltration reconstructs a Filtration from r by pushing each line
// in order with recursive=false, so the input must already list every
// face before any cell that depends on it.
//
// Stage 1 (Parse): split each line into vertex labels and a value.
// Stage 2 (Replay): push each simplex at its recorded value.
func ReadFiltration(r io.Reader) (*filtration.Filtration, error) {
	f := filtration.New(scx.New(), nil)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) < 2 {
			return nil, fmt.Errorf("serialize.ReadFiltration: line %d: %w", lineNo, ErrMalformedLine)
		}

		verts := make([]int, len(fields)-1)
		for i, tok := range fields[:len(fields)-1] {
			v, err := strconv.Atoi(strings.TrimSpace(tok))
			if err != nil {
				return nil, fmt.Errorf("serialize.ReadFiltration: line %d: vertex %q: %w", lineNo, tok, ErrMalformedLine)
			}
			verts[i] = v
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(fields[len(fields)-1]), 64)
		if err != nil {
			return nil, fmt.Errorf("serialize.ReadFiltration: line %d: value %q: %w", lineNo, fields[len(fields)-1], ErrMalformedLine)
		}

		cell, err := simplex.New(verts...)
		if err != nil {
			return nil, fmt.Errorf("serialize.ReadFiltration: line %d: %w", lineNo, err)
		}

		if _, err := f.Push(cell, value, false); err != nil {
			return nil, fmt.Errorf("serialize.ReadFiltration: line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("serialize.ReadFiltration: %w", err)
	}

	return f, nil
}
