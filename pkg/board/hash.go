package board

import "hash/fnv"

// Hash is a position hash suitable for transposition-table keys. Unlike the
// teacher's chess Zobrist table, a Congkak board is 16 small integers plus a
// side bit -- there is no incremental-update hot path worth a random table,
// so a straight FNV-1a mix over the cell vector and side is used instead
// (see spec design notes: "a fast mixing hash ... is sufficient").
type Hash uint64

func hashState(s State) Hash {
	h := fnv.New64a()
	var buf [NumCells + 1]byte
	for i, c := range s.cells {
		buf[i] = byte(c)
	}
	buf[NumCells] = byte(s.side)
	_, _ = h.Write(buf[:])

	// Mix in the second byte of larger pit counts too: FromPits accepts any
	// non-negative count, so a cell can exceed 255, and truncating to a byte
	// above would collide distinct large counts.
	var hi [NumCells]byte
	for i, c := range s.cells {
		hi[i] = byte(c >> 8)
	}
	_, _ = h.Write(hi[:])

	return Hash(h.Sum64())
}
