package governance

import (
	"strconv"

	"github.com/heartmarshall/campus-ledger/internal/domain"
	"github.com/heartmarshall/campus-ledger/internal/ledger"
)

var (
	adminKey         = ledger.NewKey("admin")
	clubCountKey     = ledger.NewKey("count", "clubs")
	proposalCountKey = ledger.NewKey("count", "proposals")
)

func clubKey(id string) ledger.Key {
	return ledger.NewKey("club", id)
}

func memberKey(clubID string, addr domain.Address) ledger.Key {
	return ledger.NewKey("member", clubID, addr.String())
}

func proposalKey(id uint32) ledger.Key {
	return ledger.NewKey("proposal", strconv.FormatUint(uint64(id), 10))
}

func voteKey(proposalID uint32, voter domain.Address) ledger.Key {
	return ledger.NewKey("vote", strconv.FormatUint(uint64(proposalID), 10), voter.String())
}
