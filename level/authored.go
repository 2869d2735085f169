package level

import (
	"embed"
	"errors"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/xochi/parameter"
	"github.com/lixenwraith/xochi/vmath"
)

//go:embed data/*.yaml
var authoredFS embed.FS

const defaultTileSize = 32.0

// ErrInvalidLevelData is returned for authored files that fail validation
var ErrInvalidLevelData = errors.New("invalid level data")

// rawLevel is the on-disk layout; tile rows and ground spans expand into rectangles
type rawLevel struct {
	Number      int            `yaml:"number"`
	Name        string         `yaml:"name"`
	Width       float64        `yaml:"width"`
	Height      float64        `yaml:"height"`
	TileSize    float64        `yaml:"tile_size"`
	Spawn       vmath.Vec2     `yaml:"spawn"`
	Baby        vmath.Vec2     `yaml:"baby"`
	Ground      *rawGround     `yaml:"ground"`
	Tiles       []rawTileRow   `yaml:"tiles"`
	Rects       []vmath.Rect   `yaml:"rects"`
	Trajineras  []rawTrajinera `yaml:"trajineras"`
	Flowers     []vmath.Vec2   `yaml:"flowers"`
	Stars       []vmath.Vec2   `yaml:"stars"`
	Mushrooms   []vmath.Vec2   `yaml:"mushrooms"`
	Feathers    []vmath.Vec2   `yaml:"feathers"`
	Elotes      []vmath.Vec2   `yaml:"elotes"`
	Thunders    []vmath.Vec2   `yaml:"thunders"`
	Enemies     []rawEnemy     `yaml:"enemies"`
	Boss        bool           `yaml:"boss"`
	Upscroller  bool           `yaml:"upscroller"`
	Escape      bool           `yaml:"escape"`
	WaterY      float64        `yaml:"water_y"`
	EscapeSpeed float64        `yaml:"escape_speed"`
}

// rawGround fills rows from FromRow to the bottom except the gap column spans
type rawGround struct {
	FromRow int      `yaml:"from_row"`
	Rows    int      `yaml:"rows"`
	Cols    int      `yaml:"cols"`
	Gaps    [][2]int `yaml:"gaps"`
}

type rawTileRow struct {
	Row  int `yaml:"row"`
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

type rawTrajinera struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	W     float64 `yaml:"w"`
	H     float64 `yaml:"h"`
	Speed float64 `yaml:"speed"`
	Dir   int     `yaml:"dir"`
	Range float64 `yaml:"range"`
	Name  string  `yaml:"name"`
}

type rawEnemy struct {
	Type      EnemyKind `yaml:"type"`
	X         float64   `yaml:"x"`
	Y         float64   `yaml:"y"`
	Amplitude float64   `yaml:"amplitude"`
	Speed     float64   `yaml:"speed"`
	Dir       int       `yaml:"dir"`
}

var (
	authoredOnce sync.Once
	authored     map[int]*Descriptor
	authoredErr  error
)

func loadAuthored() (map[int]*Descriptor, error) {
	authoredOnce.Do(func() {
		authored = make(map[int]*Descriptor, parameter.AuthoredLevels)
		for n := 1; n <= parameter.AuthoredLevels; n++ {
			name := fmt.Sprintf("data/level%d.yaml", n)
			data, err := authoredFS.ReadFile(name)
			if err != nil {
				authoredErr = fmt.Errorf("read %s: %w", name, err)
				return
			}
			d, err := ParseDescriptor(data)
			if err != nil {
				authoredErr = fmt.Errorf("parse %s: %w", name, err)
				return
			}
			if d.Number != n {
				authoredErr = fmt.Errorf("%w: %s declares level %d", ErrInvalidLevelData, name, d.Number)
				return
			}
			authored[n] = d
		}
	})
	return authored, authoredErr
}

// ParseDescriptor decodes one YAML level file
func ParseDescriptor(data []byte) (*Descriptor, error) {
	var raw rawLevel
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return raw.descriptor()
}

func (r *rawLevel) descriptor() (*Descriptor, error) {
	if r.Number < 1 || r.Width <= 0 || r.Height <= 0 {
		return nil, fmt.Errorf("%w: level %d size %.0fx%.0f", ErrInvalidLevelData, r.Number, r.Width, r.Height)
	}
	ts := r.TileSize
	if ts <= 0 {
		ts = defaultTileSize
	}

	d := &Descriptor{
		Number:       r.Number,
		Name:         r.Name,
		Width:        r.Width,
		Height:       r.Height,
		Spawn:        r.Spawn,
		Baby:         r.Baby,
		Flowers:      r.Flowers,
		Stars:        r.Stars,
		World:        WorldInfo(WorldForLevel(r.Number)),
		IsUpscroller: r.Upscroller,
		IsBossLevel:  r.Boss,
		IsEscape:     r.Escape,
		WaterY:       r.WaterY,
		EscapeSpeed:  r.EscapeSpeed,
	}

	if r.Ground != nil {
		d.Platforms = append(d.Platforms, r.Ground.rects(ts)...)
	}
	for _, t := range r.Tiles {
		if t.To < t.From {
			return nil, fmt.Errorf("%w: tile row %d spans %d..%d", ErrInvalidLevelData, t.Row, t.From, t.To)
		}
		d.Platforms = append(d.Platforms, vmath.Rect{
			X: float64(t.From) * ts,
			Y: float64(t.Row) * ts,
			W: float64(t.To-t.From+1) * ts,
			H: ts,
		})
	}
	d.Platforms = append(d.Platforms, r.Rects...)

	for _, t := range r.Trajineras {
		d.Trajineras = append(d.Trajineras, t.spec())
	}
	for _, group := range []struct {
		kind PowerUpKind
		at   []vmath.Vec2
	}{
		{PowerUpMushroom, r.Mushrooms},
		{PowerUpFeather, r.Feathers},
		{PowerUpElote, r.Elotes},
		{PowerUpThunder, r.Thunders},
	} {
		for _, p := range group.at {
			d.PowerUps = append(d.PowerUps, PowerUpSpawn{Kind: group.kind, X: p.X, Y: p.Y})
		}
	}
	for _, e := range r.Enemies {
		switch e.Type {
		case KindGull, KindHeron, KindFlying:
		default:
			return nil, fmt.Errorf("%w: unknown enemy type %q", ErrInvalidLevelData, e.Type)
		}
		d.Enemies = append(d.Enemies, EnemySpawn{
			Kind: e.Type, X: e.X, Y: e.Y,
			Amplitude: e.Amplitude, Speed: e.Speed, Dir: e.Dir,
		})
	}
	return d, nil
}

func (g *rawGround) rects(ts float64) []vmath.Rect {
	var out []vmath.Rect
	rows := max(g.Rows, 1)
	start := 0
	flush := func(end int) {
		if end > start {
			out = append(out, vmath.Rect{
				X: float64(start) * ts,
				Y: float64(g.FromRow) * ts,
				W: float64(end-start) * ts,
				H: float64(rows) * ts,
			})
		}
	}
	for _, gap := range g.Gaps {
		flush(gap[0])
		start = gap[1] + 1
	}
	flush(g.Cols)
	return out
}

func (t rawTrajinera) spec() TrajineraSpec {
	h := t.H
	if h <= 0 {
		h = parameter.TrajineraHeightDefault
	}
	rng := t.Range
	if rng <= 0 {
		rng = parameter.TrajineraRangeDefault
	}
	dir := 1
	if t.Dir < 0 {
		dir = -1
	}
	start, end := t.X, t.X+rng
	if dir < 0 {
		start, end = t.X-rng, t.X
	}
	return TrajineraSpec{
		X: t.X, Y: t.Y, W: t.W, H: h,
		Speed: t.Speed, Dir: dir,
		StartX: start, EndX: end,
		Name: t.Name,
	}
}
