package world

// Rand is the random source threaded through every generation stage.
// *math/rand.Rand satisfies it, but only SeededRand gives results that are
// stable across Go releases.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

const (
	splitmixGamma uint64 = 0x9e3779b97f4a7c15
	splitmixMulA  uint64 = 0xbf58476d1ce4e5b9
	splitmixMulB  uint64 = 0x94d049bb133111eb
)

// SeededRand is a splitmix64 generator seeded from an integer sequence.
type SeededRand struct {
	state uint64
}

// NewSeededRand folds every element of seed into the generator state.
// Equal sequences always yield equal streams; an empty seed is valid.
func NewSeededRand(seed []int) *SeededRand {
	r := &SeededRand{}
	for _, s := range seed {
		r.state ^= uint64(s)
		r.Uint64()
	}
	return r
}

// Uint64 returns the next 64 random bits.
func (r *SeededRand) Uint64() uint64 {
	r.state += splitmixGamma
	z := r.state
	z = (z ^ (z >> 30)) * splitmixMulA
	z = (z ^ (z >> 27)) * splitmixMulB
	return z ^ (z >> 31)
}

// Intn returns a value in [0, n). It panics if n <= 0.
func (r *SeededRand) Intn(n int) int {
	if n <= 0 {
		panic("world: SeededRand.Intn called with n <= 0")
	}
	return int(r.Uint64() % uint64(n))
}

// Shuffle pseudo-randomizes the order of n elements with a Fisher-Yates pass
// from the back.
func (r *SeededRand) Shuffle(n int, swap func(i, j int)) {
	if n < 0 {
		panic("world: SeededRand.Shuffle called with n < 0")
	}
	for i := n - 1; i > 0; i-- {
		swap(i, r.Intn(i+1))
	}
}
