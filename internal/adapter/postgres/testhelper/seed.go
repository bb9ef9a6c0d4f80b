package testhelper

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/campus-ledger/internal/domain"
	"github.com/heartmarshall/campus-ledger/internal/ledger"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueNamespace returns a namespace no other test uses, so parallel tests
// sharing the container never see each other's keys.
func UniqueNamespace(prefix string) ledger.Namespace {
	return ledger.Namespace(prefix + "-" + uniqueSuffix())
}

// UniqueAddress returns a fresh principal address.
func UniqueAddress() domain.Address {
	return domain.Address("G" + uuid.New().String())
}
