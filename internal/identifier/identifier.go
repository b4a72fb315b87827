// Package identifier generates collision-resistant ids for processed articles.
package identifier

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// New returns a unique article id. The primary strategy is a random UUID
// from a cryptographically secure source; if that source is unavailable the
// fallback concatenates a base-36 random value with a base-36 timestamp.
// New never panics.
func New() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return fallback()
	}
	return id.String()
}

// fallback mirrors the Math.random()+Date.now() scheme used when no secure
// random source exists. Collisions are still negligible within one session.
func fallback() string {
	//nolint:gosec // intentionally non-crypto: this path runs only when the secure source failed
	r := rand.Uint64()
	return strconv.FormatUint(r, 36) + strconv.FormatInt(time.Now().UnixMilli(), 36)
}
