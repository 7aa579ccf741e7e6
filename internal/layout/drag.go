package layout

import "strings"

// DragKind identifies what is being dragged.
type DragKind string

const (
	DragMember DragKind = "member" // a roster card from the unassigned pool
	DragSeat   DragKind = "seat"   // a seat item, possibly occupied
	DragItem   DragKind = "item"   // a free-floating object
	DragTable  DragKind = "table"  // a whole table
)

// Drop target identifiers understood by ResolveDrop.  Seat targets are the
// seat item id prefixed with "seat-".
const (
	TargetPool   = "unassigned-pool"
	TargetCanvas = "layout-canvas"

	seatTargetPrefix = "seat-"
)

// DragEvent is the generic drag-end notification produced by the UI layer.
// EntityID names the dragged member, item or table depending on Kind.  Delta
// and Selected are only meaningful for canvas drops.
type DragEvent struct {
	Kind     DragKind        `json:"kind"`
	EntityID string          `json:"entityId"`
	Target   string          `json:"target"`
	DeltaX   float64         `json:"deltaX"`
	DeltaY   float64         `json:"deltaY"`
	Selected map[string]bool `json:"-"`
}

// Intent is the interpreted meaning of a drag-end event.
type Intent string

const (
	IntentNone     Intent = "none"
	IntentUnassign Intent = "unassign"
	IntentAssign   Intent = "assign"
	IntentSwap     Intent = "swap"
	IntentMove     Intent = "move"
)

// ResolveDrop interprets a drag-end event against the layout, applies the
// resulting mutation and reports which intent was executed.
//
//	pool target    – dragged occupied seat: clear its occupant.
//	seat target    – dragged member: assign (moving it off any other seat);
//	                 dragged occupied seat: swap occupants with the target.
//	canvas target  – move the dragged entity, or the whole selection when the
//	                 dragged entity is selected, by the snapped pointer delta.
//	anything else  – no-op.
func ResolveDrop(l *Layout, ev DragEvent) Intent {
	switch {
	case ev.Target == TargetPool:
		if ev.Kind == DragSeat {
			if it := l.item(ev.EntityID); it != nil && it.MemberID != "" {
				l.UnassignSeat(ev.EntityID)
				return IntentUnassign
			}
		}
		return IntentNone

	case strings.HasPrefix(ev.Target, seatTargetPrefix):
		targetID := strings.TrimPrefix(ev.Target, seatTargetPrefix)
		switch ev.Kind {
		case DragMember:
			if target := l.item(targetID); target != nil && target.Type == TypeSeat {
				l.AssignMember(targetID, ev.EntityID)
				return IntentAssign
			}
		case DragSeat:
			src := l.item(ev.EntityID)
			if src != nil && src.MemberID != "" && ev.EntityID != targetID && l.item(targetID) != nil {
				l.SwapOccupants(ev.EntityID, targetID)
				return IntentSwap
			}
		}
		return IntentNone

	case ev.Target == TargetCanvas:
		if ev.Kind == DragMember {
			return IntentNone
		}
		l.MoveSelection(ev.EntityID, ev.Selected, Snap(ev.DeltaX), Snap(ev.DeltaY))
		return IntentMove
	}
	return IntentNone
}
