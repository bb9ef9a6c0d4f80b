package domain

import "strings"

// Address identifies a principal on the ledger. Addresses are opaque and
// compared byte for byte.
type Address string

func (a Address) String() string { return string(a) }

// IsZero reports whether the address is empty or blank.
func (a Address) IsZero() bool {
	return strings.TrimSpace(string(a)) == ""
}
