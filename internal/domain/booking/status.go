package booking

import "github.com/shearbook/barbershop-api/internal/httperr"

type Status string

const (
	StatusBooked    Status = "booked"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"

	// StatusFailed is reserved for a downstream payment collaborator.
	// Nothing in this service transitions into it.
	StatusFailed Status = "failed"
)

func IsValid(s Status) bool {
	switch s {
	case StatusBooked, StatusCompleted, StatusCancelled, StatusFailed:
		return true
	}
	return false
}

// ParseTarget validates a requested status update target. Only completed and
// cancelled are reachable through the API.
func ParseTarget(raw string) (Status, error) {
	s := Status(raw)
	if s != StatusCompleted && s != StatusCancelled {
		return "", httperr.ErrBusiness(httperr.CodeInvalidStatus)
	}
	return s, nil
}

// CanTransition allows updates only from booked. Completed, cancelled and
// failed are all terminal.
func CanTransition(current Status) error {
	if current != StatusBooked {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}
	return nil
}

func InitialStatus() Status {
	return StatusBooked
}
