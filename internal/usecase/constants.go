package usecase

import "time"

const (
	// DefaultListLimit and MaxListLimit bound pagination on list endpoints.
	DefaultListLimit = 20
	MaxListLimit     = 100

	// IdempotencyKeyTTL is the default lifetime of idempotency keys when
	// no TTL is configured.
	IdempotencyKeyTTL = 24 * time.Hour

	// ProductCacheTTL is how long product lookups stay cached; products
	// change rarely but are read on every account opening.
	ProductCacheTTL = 10 * time.Minute
)
