package domain

import (
	"errors"
	"math"
	"testing"
)

func TestTally(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		votesFor uint32
		against  uint32
		members  int
		want     ProposalStatus
	}{
		{"five members two for", 2, 0, 5, ProposalStatusActive},
		{"five members three for", 3, 0, 5, ProposalStatusApproved},
		{"four members two against", 0, 2, 4, ProposalStatusRejected},
		{"four members two for", 2, 0, 4, ProposalStatusActive},
		{"four members one each", 1, 1, 4, ProposalStatusActive},
		{"two members one for", 1, 0, 2, ProposalStatusActive},
		{"two members two for", 2, 0, 2, ProposalStatusApproved},
		{"two members one against", 0, 1, 2, ProposalStatusRejected},
		{"single member for", 1, 0, 1, ProposalStatusApproved},
		{"single member against", 0, 1, 1, ProposalStatusRejected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Tally(tt.votesFor, tt.against, tt.members); got != tt.want {
				t.Errorf("Tally(%d, %d, %d) = %s, want %s", tt.votesFor, tt.against, tt.members, got, tt.want)
			}
		})
	}
}

func TestProposal_RecordVote_StatusStaysFinal(t *testing.T) {
	t.Parallel()

	p := &Proposal{Status: ProposalStatusActive}
	p.RecordVote(false, 2)
	if p.Status != ProposalStatusRejected {
		t.Fatalf("status = %s, want REJECTED", p.Status)
	}

	// Club grew to 3; two for-votes would approve a fresh tally.
	p.RecordVote(true, 3)
	p.RecordVote(true, 3)
	if p.Status != ProposalStatusRejected {
		t.Errorf("status = %s, want REJECTED to stick", p.Status)
	}
	if p.VotesFor != 2 || p.VotesAgainst != 1 {
		t.Errorf("counts = %d/%d, want 2/1", p.VotesFor, p.VotesAgainst)
	}
}

func TestProposal_VotingEnded(t *testing.T) {
	t.Parallel()

	p := &Proposal{EndTime: 1000}
	if p.VotingEnded(1000) {
		t.Error("vote at exactly end time should be accepted")
	}
	if !p.VotingEnded(1001) {
		t.Error("vote after end time should be rejected")
	}
}

func TestVotingEnd(t *testing.T) {
	t.Parallel()

	const now uint64 = 1_772_366_400
	tests := []struct {
		name   string
		now    uint64
		days   uint64
		want   uint64
		wantOK bool
	}{
		{"zero days", now, 0, now, true},
		{"one week", now, 7, now + 7*SecondsPerDay, true},
		{"largest window", 0, math.MaxUint64 / SecondsPerDay, math.MaxUint64 / SecondsPerDay * SecondsPerDay, true},
		{"multiply overflows", now, math.MaxUint64/SecondsPerDay + 1, 0, false},
		{"add overflows", now, math.MaxUint64 / SecondsPerDay, 0, false},
		{"huge days", now, math.MaxUint64, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := VotingEnd(tt.now, tt.days)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("VotingEnd(%d, %d) = (%d, %v), want (%d, %v)", tt.now, tt.days, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestAddPoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		balance int64
		delta   int64
		want    int64
		wantErr bool
	}{
		{"credit", 10, 5, 15, false},
		{"debit", 10, -15, -5, false},
		{"to max", math.MaxInt64 - 1, 1, math.MaxInt64, false},
		{"past max", math.MaxInt64, 1, 0, true},
		{"max plus max", math.MaxInt64, math.MaxInt64, 0, true},
		{"past min", math.MinInt64, -1, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := AddPoints(tt.balance, tt.delta)
			if tt.wantErr {
				if !errors.Is(err, ErrBalanceOverflow) || !errors.Is(err, ErrConflict) {
					t.Fatalf("AddPoints(%d, %d) error = %v, want ErrBalanceOverflow", tt.balance, tt.delta, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("AddPoints(%d, %d) = (%d, %v), want %d", tt.balance, tt.delta, got, err, tt.want)
			}
		})
	}
}

func TestEvent_IsFull(t *testing.T) {
	t.Parallel()

	e := &Event{MaxParticipants: 1}
	if e.IsFull() {
		t.Error("empty event should not be full")
	}
	e.Participants = append(e.Participants, "GA")
	if !e.IsFull() {
		t.Error("event at capacity should be full")
	}
	if !e.HasParticipant("GA") {
		t.Error("GA should be a participant")
	}

	zero := &Event{}
	if !zero.IsFull() {
		t.Error("event with zero capacity is always full")
	}
}
