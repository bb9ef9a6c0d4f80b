package governance

import (
	"strings"

	"github.com/heartmarshall/campus-ledger/internal/domain"
)

// CreateClubInput holds the parameters for creating a club.
type CreateClubInput struct {
	Caller      domain.Address
	ID          string
	Name        string
	Description string
}

// Validate checks that the identifying fields are present.
func (i CreateClubInput) Validate() error {
	var errs []domain.FieldError
	if i.Caller.IsZero() {
		errs = append(errs, domain.FieldError{Field: "caller", Message: "required"})
	}
	if strings.TrimSpace(i.ID) == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// JoinClubInput holds the parameters for joining a club.
type JoinClubInput struct {
	Caller domain.Address
	ClubID string
}

func (i JoinClubInput) Validate() error {
	var errs []domain.FieldError
	if i.Caller.IsZero() {
		errs = append(errs, domain.FieldError{Field: "caller", Message: "required"})
	}
	if strings.TrimSpace(i.ClubID) == "" {
		errs = append(errs, domain.FieldError{Field: "club_id", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateProposalInput holds the parameters for raising a proposal.
// Amount and Recipient are optional and not checked against each other.
type CreateProposalInput struct {
	Caller       domain.Address
	ClubID       string
	Title        string
	Description  string
	Amount       *int64
	Recipient    *domain.Address
	DurationDays uint64
}

func (i CreateProposalInput) Validate() error {
	var errs []domain.FieldError
	if i.Caller.IsZero() {
		errs = append(errs, domain.FieldError{Field: "caller", Message: "required"})
	}
	if strings.TrimSpace(i.ClubID) == "" {
		errs = append(errs, domain.FieldError{Field: "club_id", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// VoteInput holds the parameters for casting a vote.
type VoteInput struct {
	Caller     domain.Address
	ProposalID uint32
	Support    bool
}

func (i VoteInput) Validate() error {
	if i.Caller.IsZero() {
		return domain.NewValidationError("caller", "required")
	}
	return nil
}
