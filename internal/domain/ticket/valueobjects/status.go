package valueobjects

import "fmt"

// Status is a support ticket status. The numeric codes are the ones the
// console exchanges on the wire.
type Status int

const (
	StatusPending              Status = 99
	StatusApproved             Status = 100
	StatusRejected             Status = 101
	StatusPublished            Status = 102
	StatusExpired              Status = 103
	StatusFulfilled            Status = 104
	StatusApprovedByGovernment Status = 105
)

var statusNames = map[Status]string{
	StatusPending:              "Pending",
	StatusApproved:             "Approved",
	StatusRejected:             "Rejected",
	StatusPublished:            "Published",
	StatusExpired:              "Expired",
	StatusFulfilled:            "FullFilled",
	StatusApprovedByGovernment: "Approved By Government",
}

var statusTransitions = map[Status][]Status{
	StatusPending: {
		StatusApproved,
		StatusRejected,
	},
	StatusApproved: {
		StatusPublished,
		StatusExpired,
		StatusApprovedByGovernment,
	},
	StatusPublished: {
		StatusExpired,
		StatusFulfilled,
	},
	// A rejected request may be resubmitted.
	StatusRejected: {
		StatusPending,
	},
	StatusExpired:              {},
	StatusFulfilled:            {},
	StatusApprovedByGovernment: {},
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", int(s))
}

func (s Status) ID() int {
	return int(s)
}

func (s Status) IsValid() bool {
	_, ok := statusNames[s]
	return ok
}

func (s Status) CanTransitionTo(newStatus Status) bool {
	allowed, ok := statusTransitions[s]
	if !ok {
		return false
	}
	for _, a := range allowed {
		if a == newStatus {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return len(statusTransitions[s]) == 0
}

func (s Status) IsPending() bool {
	return s == StatusPending
}

func (s Status) IsApproved() bool {
	return s == StatusApproved || s == StatusApprovedByGovernment
}

func (s Status) IsRejected() bool {
	return s == StatusRejected
}

func NewStatus(id int) (Status, error) {
	s := Status(id)
	if !s.IsValid() {
		return 0, fmt.Errorf("invalid ticket status: %d", id)
	}
	return s, nil
}
