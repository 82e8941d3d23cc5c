package game

// DieFaces is the number of faces of the combat die.
const DieFaces = 6

// Source is the randomness consumed by combat and mission assignment.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Source interface {
	// Intn returns a uniformly random int in [0, n). n > 0.
	Intn(n int) int
}

// RollDie returns a value in [1, DieFaces].
func RollDie(src Source) int {
	return src.Intn(DieFaces) + 1
}
