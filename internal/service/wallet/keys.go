package wallet

import (
	"github.com/heartmarshall/campus-ledger/internal/domain"
	"github.com/heartmarshall/campus-ledger/internal/ledger"
)

var adminKey = ledger.NewKey("admin")

func balanceKey(addr domain.Address) ledger.Key {
	return ledger.NewKey("balance", addr.String())
}

func studentKey(addr domain.Address) ledger.Key {
	return ledger.NewKey("student", addr.String())
}

func eventKey(id string) ledger.Key {
	return ledger.NewKey("event", id)
}
