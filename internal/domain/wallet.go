package domain

import "math"

// Student is a registered wallet holder.
type Student struct {
	Address    Address `json:"address"`
	Name       string  `json:"name"`
	StudentID  string  `json:"student_id"`
	Department string  `json:"department"`
	JoinedAt   uint64  `json:"joined_at"`
}

// Event rewards each participant with RewardAmount points.
type Event struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	RewardAmount    int64     `json:"reward_amount"`
	Organizer       Address   `json:"organizer"`
	MaxParticipants uint32    `json:"max_participants"`
	Participants    []Address `json:"participants"`
	IsActive        bool      `json:"is_active"`
}

func (e *Event) HasParticipant(addr Address) bool {
	for _, p := range e.Participants {
		if p == addr {
			return true
		}
	}
	return false
}

func (e *Event) IsFull() bool {
	return uint32(len(e.Participants)) >= e.MaxParticipants
}

// AddPoints returns balance+delta, or ErrBalanceOverflow when the sum leaves
// the int64 range.
func AddPoints(balance, delta int64) (int64, error) {
	if (delta > 0 && balance > math.MaxInt64-delta) || (delta < 0 && balance < math.MinInt64-delta) {
		return 0, ErrBalanceOverflow
	}
	return balance + delta, nil
}
