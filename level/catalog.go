package level

import (
	"github.com/lixenwraith/xochi/parameter"
	"github.com/lixenwraith/xochi/progress"
)

// Lookup returns the hand-authored descriptor for level n
// ok is false for levels outside the authored set
func Lookup(n int) (*Descriptor, bool) {
	levels, err := loadAuthored()
	if err != nil {
		return nil, false
	}
	d, ok := levels[n]
	if !ok {
		return nil, false
	}
	return d.Clone(), true
}

// Catalog resolves level numbers to descriptors for one run
type Catalog struct {
	seed       uint64
	difficulty progress.Difficulty
}

// NewCatalog creates a catalog; seed drives every generated level
func NewCatalog(seed uint64, difficulty progress.Difficulty) *Catalog {
	return &Catalog{seed: seed, difficulty: difficulty}
}

// Validate parses the embedded authored levels
func (c *Catalog) Validate() error {
	_, err := loadAuthored()
	return err
}

// Seed returns the generator seed
func (c *Catalog) Seed() uint64 {
	return c.seed
}

// SetDifficulty changes multipliers for levels generated afterwards
func (c *Catalog) SetDifficulty(d progress.Difficulty) {
	c.difficulty = d
}

// Level returns the descriptor for level n, clamped to the playable range
// Authored levels come from embedded data; the rest are generated with their class flags
func (c *Catalog) Level(n int) *Descriptor {
	n = ClampLevel(n)
	if n <= parameter.AuthoredLevels {
		if d, ok := Lookup(n); ok {
			return d
		}
	}
	opts := ClassOptions(n)
	opts.Seed = c.seed
	opts.Difficulty = c.difficulty
	return Generate(n, opts)
}
