// Scramble utilities: deterministic random-walk shuffling of a board.
//
// Goals:
//   - Determinism: same seed ⇒ identical walk across platforms.
//   - Solvability: only legal blank moves are applied, so the result is
//     always reachable from (and can always return to) the start.
//   - No trivial undo: a move that would immediately reverse the previous
//     move is rejected, so short walks do not collapse back onto themselves.
package board

import "math/rand"

// defaultScrambleSeed is the fixed seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultScrambleSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultScrambleSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultScrambleSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Scramble mutates b in place by applying `steps` random legal blank
// moves, never choosing the move that would undo the previous one.
// Afterwards b is re-rooted: depth 0, move label MoveNone, with key and
// heuristic already consistent. Returns ErrBadScrambleSteps if steps < 0.
// Complexity: O(steps×size).
func (b *Board) Scramble(steps int, seed int64) error {
	if steps < 0 {
		return ErrBadScrambleSteps
	}
	rng := rngFromSeed(seed)

	var (
		prev       = MoveNone
		candidates [4]Move
		targets    [4]int
	)
	for i := 0; i < steps; i++ {
		n := 0
		for _, m := range expandOrder {
			if m == opposite[prev] {
				continue
			}
			if t, ok := b.target(m); ok {
				candidates[n] = m
				targets[n] = t
				n++
			}
		}
		// Every board of side ≥ 2 has at least two legal moves, so n ≥ 1
		// even after excluding the reversal; a 1×1 board has none.
		if n == 0 {
			break
		}
		pick := rng.Intn(n)
		b.ApplyMove(targets[pick])
		prev = candidates[pick]
	}

	// The walk produces a fresh root, not a search descendant.
	b.depth = 0
	b.move = MoveNone

	return nil
}
