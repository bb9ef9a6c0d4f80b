package wallet

import (
	"strings"

	"github.com/heartmarshall/campus-ledger/internal/domain"
)

// RegisterStudentInput holds the parameters for registering a student.
type RegisterStudentInput struct {
	Student    domain.Address
	Name       string
	StudentID  string
	Department string
}

func (i RegisterStudentInput) Validate() error {
	if i.Student.IsZero() {
		return domain.NewValidationError("student", "required")
	}
	return nil
}

// CreateEventInput holds the parameters for creating a reward event.
type CreateEventInput struct {
	Organizer       domain.Address
	ID              string
	Name            string
	Description     string
	RewardAmount    int64
	MaxParticipants uint32
}

func (i CreateEventInput) Validate() error {
	var errs []domain.FieldError
	if i.Organizer.IsZero() {
		errs = append(errs, domain.FieldError{Field: "organizer", Message: "required"})
	}
	if strings.TrimSpace(i.ID) == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AttendEventInput holds the parameters for attending an event.
type AttendEventInput struct {
	Student domain.Address
	EventID string
}

func (i AttendEventInput) Validate() error {
	var errs []domain.FieldError
	if i.Student.IsZero() {
		errs = append(errs, domain.FieldError{Field: "student", Message: "required"})
	}
	if strings.TrimSpace(i.EventID) == "" {
		errs = append(errs, domain.FieldError{Field: "event_id", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// TransferInput holds the parameters for moving points between addresses.
// Amount is checked by Transfer itself, it carries a contract code.
type TransferInput struct {
	From   domain.Address
	To     domain.Address
	Amount int64
}

func (i TransferInput) Validate() error {
	var errs []domain.FieldError
	if i.From.IsZero() {
		errs = append(errs, domain.FieldError{Field: "from", Message: "required"})
	}
	if i.To.IsZero() {
		errs = append(errs, domain.FieldError{Field: "to", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
