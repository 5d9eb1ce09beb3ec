package query

import (
	"crypto/sha256"
	"encoding/hex"
)

// DomainQuery prefixes query content hashes. The version suffix allows a
// later change of rendering or algorithm.
const DomainQuery = "tql/query/v1"

// Hash returns the content address of q: SHA256(domain + 0x00 + canonical
// text). Structurally equal queries render identically and so share a
// hash.
func Hash(q Query) string {
	h := sha256.New()
	h.Write([]byte(DomainQuery))
	h.Write([]byte{0x00})
	h.Write([]byte(q.String()))
	return hex.EncodeToString(h.Sum(nil))
}
