package cache

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/katalvlaran/freeride/ticket"
)

// Key is the BLAKE3 digest identifying a solved case.
type Key [32]byte

// caseDomainKey separates case-key hashes from any other BLAKE3 use.
// ASCII "freeride.cache.case", zero-padded to 32 bytes.
var caseDomainKey = [32]byte{
	'f', 'r', 'e', 'e', 'r', 'i', 'd', 'e', '.', 'c', 'a', 'c', 'h', 'e', '.',
	'c', 'a', 's', 'e', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// KeyFor hashes everything that determines a search result: the search
// variant, the home name and the tickets in input order. Strings are length
// prefixed so no two inputs share an encoding.
func KeyFor(variant, home string, tickets []ticket.Pair) Key {
	h, err := blake3.NewKeyed(caseDomainKey[:])
	if err != nil {
		panic("cache: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	writeField(h, variant)
	writeField(h, home)
	fmt.Fprintf(h, "%d;", len(tickets))
	for _, p := range tickets {
		writeField(h, p.A)
		writeField(h, p.B)
	}

	var k Key
	h.Sum(k[:0])

	return k
}

func writeField(h *blake3.Hasher, s string) {
	fmt.Fprintf(h, "%d:%s", len(s), s)
}

// String returns the lowercase hex form used as the database key.
func (k Key) String() string { return hex.EncodeToString(k[:]) }
