// Package importer turns uploaded files into domain data: CSV files into
// roster members and PDF documents into spatially ordered text lines for the
// legacy-chart import flow.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"seatplan/internal/model"
)

// CSV column headers.  The match is case-sensitive.
const (
	headerFirstName   = "First Name"
	headerLastName    = "Last Name"
	headerDisplayName = "Display Name"
	headerRoom        = "Room"
)

// ParseMembers reads roster members from a CSV file.  Rows without a display
// name are discarded; the room defaults to the main room and is lower-cased.
// Each parsed member gets a fresh id.
func ParseMembers(r io.Reader) ([]model.Member, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty csv file")
	}
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff") // strip UTF-8 BOM
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[h] = i
	}

	var members []model.Member
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv row: %w", err)
		}
		display := field(rec, cols, headerDisplayName)
		if display == "" {
			continue
		}
		room := field(rec, cols, headerRoom)
		if room == "" {
			room = model.Rooms[0].ID
		}
		members = append(members, model.Member{
			ID:          uuid.NewString(),
			FirstName:   field(rec, cols, headerFirstName),
			LastName:    field(rec, cols, headerLastName),
			DisplayName: display,
			RoomID:      strings.ToLower(room),
		})
	}
	return members, nil
}

// field reads one named cell from a record, empty when the column is absent
// or the record is short.
func field(rec []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}
