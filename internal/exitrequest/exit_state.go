package exitrequest

import (
	"time"

	exiterrors "go-offboarding/internal/exitrequest/errors"
)

type Status string

const (
	StatusInitiated           Status = "initiated"
	StatusManagerApproved     Status = "manager_approved"
	StatusHRApproved          Status = "hr_approved"
	StatusClearanceCompleted  Status = "clearance_completed"
	StatusSettlementCompleted Status = "settlement_completed"
	StatusCompleted           Status = "completed"
	StatusCancelled           Status = "cancelled"
)

// lifecycle is the only forward path. Cancelled sits outside it.
var lifecycle = [...]Status{
	StatusInitiated,
	StatusManagerApproved,
	StatusHRApproved,
	StatusClearanceCompleted,
	StatusSettlementCompleted,
	StatusCompleted,
}

var allStatuses = [...]Status{
	StatusInitiated,
	StatusManagerApproved,
	StatusHRApproved,
	StatusClearanceCompleted,
	StatusSettlementCompleted,
	StatusCompleted,
	StatusCancelled,
}

const statusCount = len(allStatuses)

type ExitType string

const (
	ExitTypeResignation ExitType = "resignation"
	ExitTypeTermination ExitType = "termination"
	ExitTypeAbsconded   ExitType = "absconded"
	ExitTypeContractEnd ExitType = "contract_end"
)

func (t ExitType) Valid() bool {
	switch t {
	case ExitTypeResignation, ExitTypeTermination, ExitTypeAbsconded, ExitTypeContractEnd:
		return true
	}
	return false
}

func (s Status) Valid() bool {
	for _, st := range allStatuses {
		if st == s {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func lifecyclePosition(s Status) int {
	for i, st := range lifecycle {
		if st == s {
			return i
		}
	}
	return -1
}

// CanTransition returns nil when to is the immediate lifecycle successor of
// from, or when to is cancelled and from is not terminal.
func CanTransition(from, to Status) error {
	if from.IsTerminal() {
		return &exiterrors.InvalidTransitionError{From: string(from), To: string(to), Reason: "request is already " + string(from)}
	}
	if to == StatusCancelled {
		return nil
	}

	pos := lifecyclePosition(from)
	next := lifecyclePosition(to)
	switch {
	case next < 0:
		return &exiterrors.InvalidTransitionError{From: string(from), To: string(to), Reason: "unknown target status"}
	case next == pos:
		return &exiterrors.InvalidTransitionError{From: string(from), To: string(to), Reason: "request is already " + string(from)}
	case next < pos:
		return &exiterrors.InvalidTransitionError{From: string(from), To: string(to), Reason: "cannot move backwards"}
	case next > pos+1:
		return &exiterrors.InvalidTransitionError{From: string(from), To: string(to), Reason: "cannot skip " + string(lifecycle[pos+1])}
	}
	return nil
}

// stageStamp binds a status to the completion timestamp it sets. initiated
// has none.
type stageStamp struct {
	status Status
	column string
	field  func(e *ExitRequest) **time.Time
}

var stageStamps = [...]stageStamp{
	{StatusInitiated, "", nil},
	{StatusManagerApproved, "manager_approved_at", func(e *ExitRequest) **time.Time { return &e.ManagerApprovedAt }},
	{StatusHRApproved, "hr_approved_at", func(e *ExitRequest) **time.Time { return &e.HRApprovedAt }},
	{StatusClearanceCompleted, "clearance_completed_at", func(e *ExitRequest) **time.Time { return &e.ClearanceCompletedAt }},
	{StatusSettlementCompleted, "settlement_completed_at", func(e *ExitRequest) **time.Time { return &e.SettlementCompletedAt }},
	{StatusCompleted, "completed_at", func(e *ExitRequest) **time.Time { return &e.CompletedAt }},
	{StatusCancelled, "cancelled_at", func(e *ExitRequest) **time.Time { return &e.CancelledAt }},
}

// Fails to compile unless there is exactly one stamp entry per status.
var _ = [1]struct{}{}[len(stageStamps)-statusCount]

func stampFor(s Status) (stageStamp, bool) {
	for _, st := range stageStamps {
		if st.status == s {
			return st, true
		}
	}
	return stageStamp{}, false
}

// latestStamp is the newest completion timestamp already recorded.
func (e *ExitRequest) latestStamp() time.Time {
	var latest time.Time
	for _, st := range stageStamps {
		if st.field == nil {
			continue
		}
		if t := *st.field(e); t != nil && t.After(latest) {
			latest = *t
		}
	}
	return latest
}

// applyStatus moves e to target and records its completion timestamp. The
// timestamp never precedes one already set, so stamps stay non-decreasing
// even if the clock steps back. It returns the stamped column, or "" when the
// status has no timestamp.
func (e *ExitRequest) applyStatus(target Status, now time.Time) string {
	e.Status = target
	e.UpdatedAt = now

	st, ok := stampFor(target)
	if !ok || st.field == nil {
		return ""
	}
	field := st.field(e)
	if *field != nil {
		return ""
	}
	at := now
	if latest := e.latestStamp(); latest.After(at) {
		at = latest
	}
	*field = &at
	return st.column
}
