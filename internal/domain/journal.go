package domain

import (
	"time"

	"github.com/google/uuid"
)

// Invocation records one successful mutating operation. It is written in the
// same transaction as the state it describes.
type Invocation struct {
	ID         uuid.UUID
	Namespace  string
	Operation  Operation
	Caller     Address
	Details    map[string]any
	LedgerTime uint64
	CreatedAt  time.Time
}
