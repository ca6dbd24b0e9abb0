// Package scratch names transient files that must not collide with anything
// a concurrent invocation might be writing.
package scratch

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

type randReader struct{}

func (randReader) Read(p []byte) (int, error) { return rand.Read(p) }

// ID returns a fresh ULID suitable for scratch and tmp file names.
func ID() string {
	t := ulid.Timestamp(time.Now().UTC())
	entropy := ulid.Monotonic(randReader{}, 0)
	id, err := ulid.New(t, entropy)
	if err != nil {
		// fallback
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return id.String()
}
