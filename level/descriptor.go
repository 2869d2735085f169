// Package level provides the hand-authored and generated level catalog.
package level

import (
	"fmt"
	"slices"

	"github.com/lixenwraith/xochi/vmath"
)

// EnemyKind selects the enemy variant spawned
type EnemyKind string

const (
	KindGull   EnemyKind = "gull"
	KindHeron  EnemyKind = "heron"
	KindFlying EnemyKind = "flying"

	// KindBoss is Dark Xochi; boss levels spawn it, level files never list it
	KindBoss EnemyKind = "boss"
)

// PowerUpKind selects the power-up spawned
type PowerUpKind string

const (
	// PowerUpMushroom grows the player
	PowerUpMushroom PowerUpKind = "mushroom"
	// PowerUpFeather adds super jumps
	PowerUpFeather PowerUpKind = "feather"
	// PowerUpElote grants a long invincibility
	PowerUpElote PowerUpKind = "elote"
	// PowerUpThunder adds a thunderbolt charge and a super jump
	PowerUpThunder PowerUpKind = "thunder"
)

// EnemySpawn places one enemy; Amplitude and Speed apply to flyers only
type EnemySpawn struct {
	Kind      EnemyKind
	X, Y      float64
	Amplitude float64
	Speed     float64
	Dir       int
}

// TrajineraSpec places one moving boat; X and Y are the center
// The boat oscillates with its center between StartX and EndX
type TrajineraSpec struct {
	X, Y   float64
	W, H   float64
	Speed  float64
	Dir    int
	StartX float64
	EndX   float64
	Name   string
}

// PowerUpSpawn places one power-up
type PowerUpSpawn struct {
	Kind PowerUpKind
	X, Y float64
}

// Descriptor is the immutable description of one level
// Positions of spawns and pickups are centers; platforms are top-left rectangles
type Descriptor struct {
	Number int
	Name   string
	Width  float64
	Height float64

	Spawn vmath.Vec2
	Baby  vmath.Vec2

	Platforms  []vmath.Rect
	Trajineras []TrajineraSpec
	Flowers    []vmath.Vec2
	Stars      []vmath.Vec2
	PowerUps   []PowerUpSpawn
	Enemies    []EnemySpawn

	World World

	IsUpscroller bool
	IsBossLevel  bool
	IsEscape     bool

	// WaterY is the fall-death line; zero means the level bottom
	WaterY float64

	// EscapeSpeed is the flood advance rate for escape levels
	EscapeSpeed float64

	// Seed is the generator seed, zero for authored levels
	Seed uint64
}

// StarID returns the persistent identity of the i-th star
func (d *Descriptor) StarID(i int) string {
	return fmt.Sprintf("%d-%d", d.Number, i)
}

// BabyID returns the persistent identity of the level's baby
func (d *Descriptor) BabyID() string {
	return fmt.Sprintf("baby-%d", d.Number)
}

// DeathY returns the y below which the player drowns or falls out
func (d *Descriptor) DeathY() float64 {
	if d.WaterY > 0 {
		return d.WaterY
	}
	return d.Height
}

// Bounds returns the level rectangle
func (d *Descriptor) Bounds() vmath.Rect {
	return vmath.Rect{W: d.Width, H: d.Height}
}

// Clone returns a deep copy so callers cannot alter catalog entries
func (d *Descriptor) Clone() *Descriptor {
	c := *d
	c.Platforms = slices.Clone(d.Platforms)
	c.Trajineras = slices.Clone(d.Trajineras)
	c.Flowers = slices.Clone(d.Flowers)
	c.Stars = slices.Clone(d.Stars)
	c.PowerUps = slices.Clone(d.PowerUps)
	c.Enemies = slices.Clone(d.Enemies)
	return &c
}
