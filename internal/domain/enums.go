package domain

// ProposalStatus is the lifecycle state of a governance proposal.
type ProposalStatus string

const (
	ProposalStatusActive   ProposalStatus = "ACTIVE"
	ProposalStatusApproved ProposalStatus = "APPROVED"
	ProposalStatusRejected ProposalStatus = "REJECTED"
	// ProposalStatusExecuted is never assigned: no operation executes proposals.
	ProposalStatusExecuted ProposalStatus = "EXECUTED"
)

func (s ProposalStatus) String() string { return string(s) }

func (s ProposalStatus) IsValid() bool {
	switch s {
	case ProposalStatusActive, ProposalStatusApproved, ProposalStatusRejected, ProposalStatusExecuted:
		return true
	}
	return false
}

// IsFinal reports whether no further vote can change the status.
func (s ProposalStatus) IsFinal() bool {
	return s != ProposalStatusActive
}

// Operation names a mutating ledger invocation recorded in the journal.
type Operation string

const (
	OperationInitialize      Operation = "INITIALIZE"
	OperationCreateClub      Operation = "CREATE_CLUB"
	OperationJoinClub        Operation = "JOIN_CLUB"
	OperationCreateProposal  Operation = "CREATE_PROPOSAL"
	OperationVote            Operation = "VOTE"
	OperationRegisterStudent Operation = "REGISTER_STUDENT"
	OperationCreateEvent     Operation = "CREATE_EVENT"
	OperationAttendEvent     Operation = "ATTEND_EVENT"
	OperationTransfer        Operation = "TRANSFER"
)

func (o Operation) String() string { return string(o) }

func (o Operation) IsValid() bool {
	switch o {
	case OperationInitialize, OperationCreateClub, OperationJoinClub, OperationCreateProposal,
		OperationVote, OperationRegisterStudent, OperationCreateEvent, OperationAttendEvent,
		OperationTransfer:
		return true
	}
	return false
}
