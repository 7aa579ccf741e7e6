package layout

import (
	"sort"

	"seatplan/internal/model"
)

// SeatOccupant is one entry in a seat's occupancy history.
type SeatOccupant struct {
	Year        int    `json:"year"`
	DisplayName string `json:"displayName"`
}

// SeatVisit is one entry in a member's seat history.
type SeatVisit struct {
	Year      int    `json:"year"`
	SeatLabel string `json:"seatLabel"`
}

// ProjectBySeatLabel derives, from persisted per-year snapshots and the
// roster, a map from seat label to the chronological list of occupants,
// latest year first.  Seats whose member cannot be resolved are skipped.
func ProjectBySeatLabel(snapshots []Snapshot, members []model.Member) map[string][]SeatOccupant {
	byID := make(map[string]model.Member, len(members))
	for _, m := range members {
		byID[m.ID] = m
	}
	history := make(map[string][]SeatOccupant)
	for _, s := range snapshots {
		for _, it := range s.Items {
			if it.Type != TypeSeat || it.MemberID == "" {
				continue
			}
			m, ok := byID[it.MemberID]
			if !ok {
				continue
			}
			history[it.Label] = append(history[it.Label], SeatOccupant{Year: s.Year, DisplayName: m.DisplayName})
		}
	}
	for label := range history {
		entries := history[label]
		sort.Slice(entries, func(i, j int) bool { return entries[i].Year > entries[j].Year })
	}
	return history
}

// ProjectByMember aggregates a single member's seat history across all
// snapshots, latest year first.  At most one seat per year is reported.
func ProjectByMember(snapshots []Snapshot, memberID string) []SeatVisit {
	var visits []SeatVisit
	for _, s := range snapshots {
		for _, it := range s.Items {
			if it.MemberID == memberID {
				visits = append(visits, SeatVisit{Year: s.Year, SeatLabel: it.Label})
				break
			}
		}
	}
	sort.Slice(visits, func(i, j int) bool { return visits[i].Year > visits[j].Year })
	return visits
}
