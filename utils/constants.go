// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the upper bound on how long a verified token stays cached.
const AuthCacheTTL = 10 * time.Minute

// ProviderSnapshotKey stores the JSON snapshot of all profiles used by matching.
const ProviderSnapshotKey = "providers:snapshot"
