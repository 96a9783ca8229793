/*
 * Corvid - a UCI-compatible chess engine written in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2024 The Corvid Authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package types

// Magic is one square's entry in a fancy-magic sliding-attack lookup: a
// relevance mask, a magic multiplier, the shift that turns a masked
// occupancy into a table index, and the attack table itself.
type Magic struct {
	Mask    Bitboard
	Magic   Bitboard
	Attacks []Bitboard
	Shift   uint
}

// index maps an occupancy bitboard to m's slot in Attacks, following the
// standard fancy-magic formula: mask off irrelevant squares, multiply by
// the magic constant, and keep the top bits as an index.
func (m *Magic) index(occupied Bitboard) uint {
	occ := occupied & m.Mask
	occ *= m.Magic
	occ >>= m.Shift
	return uint(occ)
}

// initMagics finds, for each square, a magic multiplier that maps every
// relevant occupancy subset to a distinct slot in a shared attacks table,
// then fills that table with the corresponding sliding attacks. directions
// is the 4 ray directions for a rook or a bishop. Algorithm and magic-seed
// table follow Stockfish's fancy-magic generator.
func initMagics(table *[]Bitboard, magics *[64]Magic, directions *[4]Direction) {
	// seeds chosen empirically so the per-rank search below terminates fast.
	seeds := [RankLength]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

	var occupancy, reference [4096]Bitboard
	var epoch [4096]int
	attempt := 0
	subsetCount := 0 // subset count from the PREVIOUS square, used to offset this square's attacks slice

	for sq := SqA1; sq <= SqH8; sq++ {
		m := &magics[sq]

		// Squares on the board edge never add information to the relevant
		// occupancy: a slider either stops before them or runs off the
		// board, so they're excluded from the mask.
		edges := ((Rank1_Bb | Rank8_Bb) &^ sq.RankOf().Bb()) | ((FileA_Bb | FileH_Bb) &^ sq.FileOf().Bb())
		m.Mask = slidingAttack(directions, sq, BbZero) &^ edges
		m.Shift = uint(64 - m.Mask.PopCount())

		if sq == SqA1 {
			m.Attacks = *table
		} else {
			m.Attacks = magics[sq-1].Attacks[subsetCount:]
		}

		subsetCount = enumerateSubsets(directions, sq, m.Mask, &occupancy, &reference)

		rng := newSplitShiftRng(seeds[sq.RankOf()])
		findMagicFor(m, subsetCount, &occupancy, &reference, &epoch, &attempt, rng)
	}
}

// enumerateSubsets walks every subset of mask via the carry-rippler trick
// and records the occupancy alongside the sliding attack it produces,
// returning how many subsets were generated.
func enumerateSubsets(directions *[4]Direction, sq Square, mask Bitboard, occupancy, reference *[4096]Bitboard) int {
	n := 0
	var b Bitboard
	for {
		occupancy[n] = b
		reference[n] = slidingAttack(directions, sq, b)
		n++
		b = (b - mask) & mask
		if b == 0 {
			break
		}
	}
	return n
}

// findMagicFor repeatedly tries random magics for m until one maps every
// occupancy in occupancy[:n] to a table slot consistent with reference[:n],
// building m.Attacks as a side effect of the successful attempt.
func findMagicFor(m *Magic, n int, occupancy, reference *[4096]Bitboard, epoch *[4096]int, attempt *int, rng *splitShiftRng) {
	for i := 0; i < n; {
		for {
			m.Magic = Bitboard(rng.sparse())
			if ((m.Magic * m.Mask) >> 56).PopCount() >= 6 {
				continue
			}
			break
		}

		*attempt++
		for i = 0; i < n; i++ {
			idx := m.index(occupancy[i])
			if epoch[idx] < *attempt {
				epoch[idx] = *attempt
				m.Attacks[idx] = reference[i]
			} else if m.Attacks[idx] != reference[i] {
				break
			}
		}
	}
}

// slidingAttack computes the sliding-piece attack set from sq along
// directions given the occupied squares, by single-stepping each ray
// until it runs off the board or hits an occupied square. Only used
// during startup precomputation, never on a search's hot path.
func slidingAttack(directions *[4]Direction, sq Square, occupied Bitboard) Bitboard {
	attack := BbZero
	for _, d := range directions {
		for s := sq; ; {
			next := s.To(d)
			if !next.IsValid() || SquareDistance(s, next) != 1 {
				break
			}
			s = next
			attack.PushSquare(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

// splitShiftRng is the xorshift64star generator Stockfish uses to pick
// magic-number candidates: a single 64-bit state, full period 2^64-1, no
// warm-up needed.
type splitShiftRng struct {
	state uint64
}

func newSplitShiftRng(seed uint64) *splitShiftRng {
	return &splitShiftRng{state: seed}
}

func (r *splitShiftRng) next() uint64 {
	r.state ^= r.state >> 12
	r.state ^= r.state << 25
	r.state ^= r.state >> 27
	return r.state * 2685821657736338717
}

// sparse ANDs three draws together so on average only 1/8th of the bits
// come out set, which tends to produce better magic-number candidates.
func (r *splitShiftRng) sparse() uint64 {
	return r.next() & r.next() & r.next()
}
