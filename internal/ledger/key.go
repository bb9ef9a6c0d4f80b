// Package ledger defines the keyed store that backs every ledger namespace
// and the typed helpers services use to read and write it.
package ledger

import (
	"net/url"
	"strings"
)

// Namespace scopes a keyed store. Governance and wallet never share keys.
type Namespace string

const (
	NamespaceGovernance Namespace = "governance"
	NamespaceWallet     Namespace = "wallet"
)

func (n Namespace) String() string { return string(n) }

func (n Namespace) IsValid() bool {
	switch n {
	case NamespaceGovernance, NamespaceWallet:
		return true
	}
	return false
}

// Key addresses one value inside a namespace. Keys are compared by their
// rendered form, so two keys with the same tag and parts are equal.
type Key struct {
	tag   string
	parts []string
}

// NewKey builds a key from a variant tag and its identifying parts.
func NewKey(tag string, parts ...string) Key {
	return Key{tag: tag, parts: parts}
}

// Tag returns the key variant.
func (k Key) Tag() string { return k.tag }

// String renders the key as tag/part/part with each part path-escaped, so a
// part containing "/" cannot collide with a different key.
func (k Key) String() string {
	if len(k.parts) == 0 {
		return k.tag
	}
	var b strings.Builder
	b.WriteString(k.tag)
	for _, p := range k.parts {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(p))
	}
	return b.String()
}
