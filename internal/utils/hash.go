package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// cosmeticHashHexLen is the number of hex characters of the SHA-256 digest
// kept in the displayed hash.
const cosmeticHashHexLen = 32

// CosmeticHash computes the display-only "blockchain hash" attached to a
// verification: "0x" + the first 32 hex characters of SHA-256(content + ts)
// + "...".
//
// Despite the name there is no chain, no anchoring, and no verification
// semantics behind this value. It is a non-authoritative content+time digest
// shown in the UI and must never be treated as proof of anything.
func CosmeticHash(content string, ts time.Time) string {
	sum := sha256.Sum256([]byte(content + ts.Format(time.RFC3339Nano)))
	return "0x" + hex.EncodeToString(sum[:])[:cosmeticHashHexLen] + "..."
}
