package auth

import (
	"fmt"
	"hash/fnv"

	"github.com/heartmarshall/mindlog-backend/internal/domain"
)

// DeriveUserID computes the pseudonymous user ID for a display name:
// the FNV-1a 32-bit digest of "lower(name):phrase", rendered as 8
// lowercase hex characters. Existing journals depend on this exact
// digest, so it must never change. It is a pseudonym, not a credential:
// it keeps real names out of the shared store but offers no
// cryptographic protection against someone who knows the phrase.
func DeriveUserID(displayName, secretPhrase string) string {
	normalized := domain.NormalizeName(displayName)

	h := fnv.New32a()
	h.Write([]byte(normalized + ":" + secretPhrase))
	return fmt.Sprintf("%08x", h.Sum32())
}
