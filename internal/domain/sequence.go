package domain

import (
	"fmt"
	"strconv"
	"time"
)

// Counter names used by the core.
const (
	SequenceTransactionNumber = "TRANSACTION_NUMBER"
	SequenceAccountNumber     = "ACCOUNT_NUMBER"
	SequenceCustomerNumber    = "CUSTOMER_NUMBER"
	SequenceReferenceNumber   = "REFERENCE_NUMBER"
)

// SequenceCounter is a named monotonically incrementing value used to mint
// human-readable identifiers. Rows are created lazily on first use and
// incremented only under an exclusive row lock.
type SequenceCounter struct {
	Name      string
	LastValue int64
	Prefix    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FormatSequence renders a counter value as an identifier. With a prefix
// the value is zero-padded to seven digits ("TXN0000123"); without one
// the bare digits are returned.
func FormatSequence(prefix string, value int64) string {
	if prefix == "" {
		return strconv.FormatInt(value, 10)
	}
	return fmt.Sprintf("%s%07d", prefix, value)
}
