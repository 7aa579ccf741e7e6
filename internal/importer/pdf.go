package importer

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// lineTolerance is the maximum vertical distance, in PDF text-space units,
// between fragments considered to lie on the same spatial row.
const lineTolerance = 0.5

// cellSeparator joins the fragments of one row into a pipe-delimited line.
const cellSeparator = " | "

// fragment is one positioned text run extracted from a page.  Y grows
// downward here (PDF coordinates are flipped on extraction) so sorting
// ascending yields top-to-bottom order.
type fragment struct {
	X, Y float64
	Text string
}

// ExtractLines parses the document bytes and returns one pipe-delimited line
// per detected spatial row: fragments are clustered into rows by vertical
// proximity, rows ordered top to bottom and cells left to right.
func ExtractLines(data []byte) (lines []string, err error) {
	// The underlying reader panics on some malformed documents; surface
	// that as a parse error rather than killing the request.
	defer func() {
		if r := recover(); r != nil {
			lines, err = nil, fmt.Errorf("parse pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("parse pdf: %w", err)
	}

	var frags []fragment
	for p := 1; p <= r.NumPage(); p++ {
		page := r.Page(p)
		if page.V.IsNull() {
			continue
		}
		for _, t := range page.Content().Text {
			s := strings.TrimSpace(t.S)
			if s == "" {
				continue
			}
			// PDF origin is bottom-left; negate Y so ascending means
			// top of the page first.
			frags = append(frags, fragment{X: t.X, Y: -t.Y, Text: s})
		}
	}
	return clusterLines(frags), nil
}

// clusterLines groups fragments into rows by Y proximity and renders each
// row as a pipe-delimited line, fragments ordered left to right.
func clusterLines(frags []fragment) []string {
	sort.Slice(frags, func(i, j int) bool {
		if frags[i].Y != frags[j].Y {
			return frags[i].Y < frags[j].Y
		}
		return frags[i].X < frags[j].X
	})

	var rows [][]fragment
	lastY := math.Inf(-1)
	for _, f := range frags {
		if len(rows) > 0 && math.Abs(f.Y-lastY) < lineTolerance {
			rows[len(rows)-1] = append(rows[len(rows)-1], f)
		} else {
			rows = append(rows, []fragment{f})
		}
		lastY = f.Y
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		sort.Slice(row, func(i, j int) bool { return row[i].X < row[j].X })
		parts := make([]string, len(row))
		for i, f := range row {
			parts[i] = f.Text
		}
		lines = append(lines, strings.Join(parts, cellSeparator))
	}
	return lines
}
