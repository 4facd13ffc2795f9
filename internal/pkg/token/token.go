// Package token generates single-use confirmation tokens.
package token

import "crypto/rand"

// Length is the number of characters in a confirmation token.
const Length = 25

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Generate returns a token of Length characters drawn uniformly from
// [A-Za-z0-9] using crypto/rand. Uniformity matters: a biased token space
// shrinks the effective entropy an attacker has to guess through.
//
// Collisions across calls are treated as negligible; the primary key on the
// subscription_tokens table is the authoritative collision guard.
func Generate() string {
	out := make([]byte, 0, Length)
	buf := make([]byte, 32)
	for len(out) < Length {
		rand.Read(buf)
		for _, b := range buf {
			// Rejection sampling: 62*4=248, so bytes in [248,255] would bias
			// the first 8 alphabet entries if mapped by modulo. Skip them.
			if b >= 248 {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == Length {
				break
			}
		}
	}
	return string(out)
}
