package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/dcsim/internal/dice Roller

// Roller provides uniform dice rolls
type Roller interface {
	// Roll returns a uniform integer in [1, sides]
	Roll(sides int) int
}

// SeededRoller is a Roller backed by its own math/rand source.
// It is not safe for concurrent use; give each goroutine its own.
type SeededRoller struct {
	random *rand.Rand
}

// Config for dice roller
type Config struct {
	// Optional seed for reproducible runs
	Seed int64
}

// New creates a new dice roller
func New(cfg *Config) *SeededRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = MustNewSeed()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &SeededRoller{
		random: random,
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *SeededRoller) Roll(sides int) int {
	if sides < 1 {
		return 1
	}
	return r.random.Intn(sides) + 1
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// MustNewSeed is NewSeed for callers with no error path.
func MustNewSeed() int64 {
	seed, err := NewSeed()
	if err != nil {
		panic(err)
	}
	return seed
}
