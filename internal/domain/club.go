package domain

import "math/bits"

// SecondsPerDay converts proposal durations into ledger seconds.
const SecondsPerDay uint64 = 86400

// Club is a governance group. Members keeps join order; the first member is
// always the creator.
type Club struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Admin       Address   `json:"admin"`
	Members     []Address `json:"members"`
	CreatedAt   uint64    `json:"created_at"`
}

// MemberCount returns N for threshold evaluation.
func (c *Club) MemberCount() int {
	return len(c.Members)
}

// Proposal is a motion raised inside a club and decided by member votes.
// Amount and Recipient are set together by convention only.
type Proposal struct {
	ID           uint32         `json:"id"`
	ClubID       string         `json:"club_id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Creator      Address        `json:"creator"`
	Amount       *int64         `json:"amount,omitempty"`
	Recipient    *Address       `json:"recipient,omitempty"`
	VotesFor     uint32         `json:"votes_for"`
	VotesAgainst uint32         `json:"votes_against"`
	Status       ProposalStatus `json:"status"`
	CreatedAt    uint64         `json:"created_at"`
	EndTime      uint64         `json:"end_time"`
}

// VotingEnded reports whether now is past the end of the voting window.
// A vote at exactly EndTime is still accepted.
func (p *Proposal) VotingEnded(now uint64) bool {
	return now > p.EndTime
}

// VotingEnd returns now plus days in ledger seconds. ok is false when the
// result does not fit in a uint64.
func VotingEnd(now, days uint64) (end uint64, ok bool) {
	hi, span := bits.Mul64(days, SecondsPerDay)
	if hi != 0 {
		return 0, false
	}
	end, carry := bits.Add64(now, span, 0)
	if carry != 0 {
		return 0, false
	}
	return end, true
}

// RecordVote increments the matching counter and re-evaluates the status
// against a club of memberCount members. Once a proposal leaves Active its
// status no longer changes, but counts keep growing.
func (p *Proposal) RecordVote(support bool, memberCount int) {
	if support {
		p.VotesFor++
	} else {
		p.VotesAgainst++
	}
	if p.Status.IsFinal() {
		return
	}
	p.Status = Tally(p.VotesFor, p.VotesAgainst, memberCount)
}

// Tally applies the majority thresholds. Approval needs strictly more than
// half (floor) of the members; rejection needs at least half (floor).
func Tally(votesFor, votesAgainst uint32, memberCount int) ProposalStatus {
	half := uint32(memberCount / 2)
	switch {
	case votesFor > half:
		return ProposalStatusApproved
	case votesAgainst >= half:
		return ProposalStatusRejected
	default:
		return ProposalStatusActive
	}
}

// Vote is the replay guard for one voter on one proposal.
type Vote struct {
	ProposalID uint32  `json:"proposal_id"`
	Voter      Address `json:"voter"`
	Support    bool    `json:"support"`
	CastAt     uint64  `json:"cast_at"`
}
