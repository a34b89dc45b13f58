package utils

import "time"

// SessionCachePrefix is the prefix used for Redis negotiation session keys.
const SessionCachePrefix = "booking:session:"

// SessionCacheTTL is the time-to-live for a negotiation session; refreshed on
// every session operation so an active negotiation never expires mid-round.
const SessionCacheTTL = 30 * time.Minute
