package level

import (
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/xochi/parameter"
	"github.com/lixenwraith/xochi/progress"
	"github.com/lixenwraith/xochi/vmath"
)

// Options selects the generated level class and its random stream
type Options struct {
	IsBoss       bool
	IsUpscroller bool
	IsEscape     bool
	Seed         uint64
	Difficulty   progress.Difficulty
}

// ClassOptions returns the level-class flags used for level n
func ClassOptions(n int) Options {
	return Options{
		IsBoss:       n == 5 || n == 10,
		IsUpscroller: n == 3 || n == 8,
		IsEscape:     n == 9,
	}
}

// Density scales entity counts by level
type Density struct {
	Enemies   float64
	Platforms float64
	Coins     float64
}

// DensityFor returns the density multipliers for level n
func DensityFor(n int) Density {
	switch {
	case n <= 2:
		return Density{Enemies: 0.7, Platforms: 1.2, Coins: 1.0}
	case n <= 5:
		return Density{Enemies: 1.0, Platforms: 1.0, Coins: 1.2}
	case n <= 8:
		return Density{Enemies: 1.15, Platforms: 0.9, Coins: 1.3}
	default:
		return Density{Enemies: 1.15, Platforms: 0.85, Coins: 1.5}
	}
}

// Zone is an enemy-free x span
type Zone struct {
	StartX, EndX float64
}

// BreathingZones returns the safe spans for a level of the given width
func BreathingZones(width float64, n int) []Zone {
	var spacing float64
	switch {
	case n <= 2:
		spacing = 400
	case n <= 5:
		spacing = 600
	case n <= 8:
		spacing = 850
	default:
		spacing = 900
	}
	half := parameter.GenBreathingWidth / 2
	var zones []Zone
	for cx := parameter.GenSectionWidth + spacing; cx < width-parameter.GenSectionWidth; cx += spacing {
		zones = append(zones, Zone{StartX: cx - half, EndX: cx + half})
	}
	return zones
}

func inZone(x float64, zones []Zone) bool {
	for _, z := range zones {
		if x >= z.StartX && x <= z.EndX {
			return true
		}
	}
	return false
}

var trajineraNames = []string{
	"La Lupita", "El Sol", "Frida", "La Estrella", "Amor Eterno",
	"La Rosa", "El Mariachi", "Corazon", "La Luna", "Esperanza",
	"Alegria", "Mi Cielo", "La Paloma", "El Jardin", "Dulce Maria",
	"La Sirena", "El Azteca", "Mariposa", "La Catrina", "Xochitl",
}

type generator struct {
	n       int
	rng     *rand.Rand
	preset  progress.Preset
	density Density
	names   int
	d       *Descriptor
}

// Generate builds level n from opts; equal inputs give equal descriptors
func Generate(n int, opts Options) *Descriptor {
	g := &generator{
		n:       n,
		rng:     rand.New(rand.NewPCG(opts.Seed, uint64(n))),
		preset:  opts.Difficulty.Preset(),
		density: DensityFor(n),
		d: &Descriptor{
			Number: n,
			World:  WorldInfo(WorldForLevel(n)),
			Seed:   opts.Seed,
		},
	}
	switch {
	case opts.IsBoss:
		g.bossArena()
	case opts.IsUpscroller:
		g.upscroller()
	case opts.IsEscape:
		g.escape()
	default:
		g.canal()
	}
	return g.d
}

func (g *generator) float(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

func (g *generator) name() string {
	s := trajineraNames[g.names%len(trajineraNames)]
	g.names++
	return s
}

// boat places a trajinera oscillating inside [slotX, slotX+slotW]
func (g *generator) boat(slotX, slotW, y, w, h, speed float64, dir int) {
	lo := slotX + w/2
	hi := max(lo, slotX+slotW-w/2)
	x := lo
	if dir < 0 {
		x = hi
	}
	g.d.Trajineras = append(g.d.Trajineras, TrajineraSpec{
		X: x, Y: y, W: w, H: h,
		Speed: speed, Dir: dir,
		StartX: lo, EndX: hi,
		Name: g.name(),
	})
}

func (g *generator) flyer(x, y, amp, speed float64, dir int) {
	g.d.Enemies = append(g.d.Enemies, EnemySpawn{
		Kind: KindFlying, X: x, Y: y, Amplitude: amp, Speed: speed, Dir: dir,
	})
}

func (g *generator) coin(x, y float64) {
	g.d.Flowers = append(g.d.Flowers, vmath.V(x, y))
}

func (g *generator) mushroom(x, y float64) {
	g.powerUp(PowerUpMushroom, x, y)
}

func (g *generator) powerUp(kind PowerUpKind, x, y float64) {
	g.d.PowerUps = append(g.d.PowerUps, PowerUpSpawn{Kind: kind, X: x, Y: y})
}

// midLevelPowerUps is the rotation for power-ups placed between a level's start and end
var midLevelPowerUps = []PowerUpKind{PowerUpFeather, PowerUpMushroom, PowerUpThunder, PowerUpElote}

func (g *generator) midPowerUp(i int, x, y float64) {
	g.powerUp(midLevelPowerUps[i%len(midLevelPowerUps)], x, y)
}

func (g *generator) difficulty() float64 {
	return math.Min(float64(g.n)/10, 1)
}

// canal is the default water level: chinampas at both ends, boat lanes between
func (g *generator) canal() {
	n := float64(g.n)
	d := g.d
	d.Name = "Canal Run"
	d.Width = parameter.GenBaseWidth + n*parameter.GenWidthPerLevel
	d.Height = parameter.GenHeight
	d.WaterY = d.Height - parameter.GenWaterOffset
	waterY := d.WaterY
	zones := BreathingZones(d.Width, g.n)

	g.intro(waterY)
	g.outro(waterY)

	speedMult := 1 + n*parameter.GenSpeedPerLevel
	middleStart := parameter.GenSectionWidth
	middleWidth := d.Width - 2*parameter.GenSectionWidth

	lanes := []struct {
		y     float64
		dir   int
		speed float64
		boats int
	}{
		{waterY - 80, 1, 30, g.n + 5},
		{waterY - 150, -1, 40, g.n + 4},
		{waterY - 220, 1, 50, g.n + 4},
		{waterY - 290, -1, 45, g.n + 3},
		{waterY - 360, 1, 55, g.n + 3},
		{waterY - 420, -1, 35, 2 + g.n/2},
	}
	for li, lane := range lanes {
		boats := int(float64(lane.boats) * g.density.Platforms)
		spacing := middleWidth / float64(max(1, boats))
		for i := 0; i < boats; i++ {
			offset := float64(i) * spacing
			if li%2 == 1 {
				offset += spacing / 2
			}
			slotW := math.Min(spacing, middleStart+middleWidth-(middleStart+offset))
			w := g.float(100, 160)
			y := lane.y + (g.rng.Float64()-0.5)*20
			speed := (lane.speed + g.rng.Float64()*25) * speedMult
			g.boat(middleStart+offset, slotW, y, w, parameter.GenTrajineraH, speed, lane.dir)
		}
	}

	coins := int((15 + n*3) * g.density.Coins)
	for i := 0; i < coins; i++ {
		g.coin(middleStart+g.rng.Float64()*middleWidth, waterY-100-g.rng.Float64()*350)
	}

	d.Stars = append(d.Stars,
		vmath.V(middleStart+middleWidth*0.2, waterY-180),
		vmath.V(middleStart+middleWidth*0.5, waterY-300),
		vmath.V(middleStart+middleWidth*0.8, waterY-400),
	)

	enemies := int((2 + g.difficulty()*3) * g.preset.EnemyMult * g.density.Enemies)
	for i := 0; i < enemies; i++ {
		x := middleStart + 100 + float64(i)*(middleWidth-200)/float64(max(1, enemies))
		y := waterY - 200 - g.rng.Float64()*200
		amp := g.float(40, 80)
		speed := g.float(40, 80)
		dir := 1
		if i%2 == 1 {
			dir = -1
		}
		if !inZone(x, zones) {
			g.flyer(x, y, amp, speed, dir)
		}
	}

	powerups := int((3 + g.difficulty()*2) * g.preset.PowerupMult)
	g.mushroom(150, waterY-140)
	for i := 1; i < powerups; i++ {
		g.midPowerUp(i-1, middleStart+float64(i)*(middleWidth/float64(powerups)), waterY-150-g.rng.Float64()*250)
	}
	g.mushroom(d.Width-120, waterY-140)

	d.Spawn = vmath.V(100, waterY-150)
	d.Baby = vmath.V(d.Width-125, waterY-150)
}

// intro lays the safe start chinampa, its guards and a coin pattern
func (g *generator) intro(waterY float64) {
	baseY := waterY - 100
	switch {
	case g.n <= 2:
		g.d.Platforms = append(g.d.Platforms, vmath.Rect{X: 0, Y: baseY, W: 200, H: 150})
		g.flyer(250, baseY-50, 30, 30, 1)
		for i := 0; i < 5; i++ {
			g.coin(50+float64(i)*40, baseY-40-math.Sin(float64(i)/4*math.Pi)*60)
		}
	case g.n <= 5:
		g.d.Platforms = append(g.d.Platforms, vmath.Rect{X: 0, Y: baseY, W: 180, H: 150})
		g.flyer(220, baseY-30, 25, 35, 1)
		g.flyer(280, baseY-120, 30, 40, -1)
		for i := 0; i < 8; i++ {
			g.coin(30+float64(i)*35, baseY-50-math.Sin(float64(i)/7*math.Pi*2)*40)
		}
	default:
		g.d.Platforms = append(g.d.Platforms, vmath.Rect{X: 0, Y: baseY, W: 150, H: 150})
		g.flyer(200, baseY-40, 35, 45, 1)
		g.flyer(260, baseY-100, 30, 50, -1)
		for i := 0; i < 10; i++ {
			angle := float64(i) / 10 * math.Pi * 1.5
			radius := 30 + float64(i)*8
			g.coin(80+math.Cos(angle)*radius, baseY-60-math.Sin(angle)*radius*0.6)
		}
	}
}

// outro lays the landing chinampa before the baby, its guards and an arrow of coins
func (g *generator) outro(waterY float64) {
	baseY := waterY - 100
	width := g.d.Width
	outroStart := width - parameter.GenSectionWidth
	n := float64(g.n)

	g.d.Platforms = append(g.d.Platforms, vmath.Rect{X: width - 250, Y: baseY, W: 250, H: 150})

	guards := 2
	if g.n > 5 {
		guards = 3
	}
	spacing := 200 / float64(guards+1)
	for i := 0; i < guards; i++ {
		dir := 1
		if i%2 == 1 {
			dir = -1
		}
		g.flyer(outroStart+50+float64(i+1)*spacing, baseY-80-float64(i%2)*60, 25+n*2, 35+n*3, dir)
	}
	g.arrow(width-80, width-180, baseY-60)
}

func (g *generator) arrow(tipX, baseX, centerY float64) {
	g.coin(tipX, centerY)
	g.coin(baseX+30, centerY-25)
	g.coin(baseX, centerY-50)
	g.coin(baseX+30, centerY+25)
	g.coin(baseX, centerY+50)
}

// upscroller is a tall narrow climb with the baby at the top
func (g *generator) upscroller() {
	n := float64(g.n)
	d := g.d
	d.Name = "Aqueduct Climb"
	d.IsUpscroller = true
	d.Width = parameter.GenUpscrollerWidth
	d.Height = parameter.GenUpscrollerBaseH + n*parameter.GenUpscrollerPerLevelH
	d.WaterY = d.Height - 20
	w, h := d.Width, d.Height

	introW := 150.0
	switch {
	case g.n <= 2:
		introW = 200
	case g.n <= 5:
		introW = 180
	}
	d.Platforms = append(d.Platforms, vmath.Rect{X: w/2 - introW/2, Y: h - 50, W: introW, H: 50})

	introCoins := 10
	switch {
	case g.n <= 2:
		introCoins = 5
	case g.n <= 5:
		introCoins = 8
	}
	for i := 0; i < introCoins; i++ {
		g.coin(w/2+float64(i-introCoins/2)*30, h-90-math.Sin(float64(i)/float64(introCoins-1)*math.Pi)*40)
	}
	g.mushroom(w/2, h-90)

	d.Platforms = append(d.Platforms, vmath.Rect{X: w/2 - 70, Y: h - 170, W: 140, H: 25})
	g.coin(w/2, h-200)
	g.boat(w/2-60, 180, h-290, 120, 25, 40, 1)

	chinampaChance := 0.2 * g.density.Platforms
	const trajineraChance = 0.5
	y := h - 400
	lastX := w / 2
	for y > 150 {
		r := g.rng.Float64()
		switch {
		case r < chinampaChance:
			pw := g.float(90, 140)
			px := vmath.Clamp(lastX+(g.rng.Float64()-0.5)*200, 40, w-pw-40)
			d.Platforms = append(d.Platforms, vmath.Rect{X: px, Y: y, W: pw, H: 20})
			lastX = px + pw/2
			coins := int(math.Ceil(g.density.Coins))
			for c := 0; c < coins; c++ {
				g.coin(lastX+float64(c-coins/2)*20, y-30)
			}
		case r < chinampaChance+trajineraChance:
			bw := g.float(100, 150)
			dir := 1
			if g.rng.Float64() < 0.5 {
				dir = -1
			}
			g.boat(20, w-40, y, bw, 25, g.float(50, 100)+n*5, dir)
			lastX = w / 2
		default:
			pw := g.float(60, 90)
			px := vmath.Clamp(lastX+(g.rng.Float64()-0.5)*180, 30, w-pw-30)
			d.Platforms = append(d.Platforms, vmath.Rect{X: px, Y: y, W: pw, H: 15})
			lastX = px + pw/2
		}
		gap := g.float(90, 140) + n*3
		y -= gap
		if g.rng.Float64() < 0.2*g.preset.PowerupMult {
			g.mushroom(lastX, y+gap/2)
		}
	}

	d.Platforms = append(d.Platforms, vmath.Rect{X: w/2 - 60, Y: 80, W: 120, H: 25})
	g.coin(w/2, 120)
	g.coin(w/2-20, 140)
	g.coin(w/2+20, 140)
	g.coin(w/2-40, 160)
	g.coin(w/2+40, 160)

	d.Stars = append(d.Stars, vmath.V(w/2, h-500), vmath.V(w/2, h/2), vmath.V(w/2, 250))
	g.mushroom(w/2-50, h-600)
	g.mushroom(w/2+50, h/2)
	g.mushroom(w/2, 350)

	spacing := 1000.0
	switch {
	case g.n <= 2:
		spacing = 400
	case g.n <= 5:
		spacing = 600
	case g.n <= 8:
		spacing = 800
	}
	enemies := int((1 + n*0.3) * g.preset.EnemyMult * g.density.Enemies)
	for i := 0; i < enemies; i++ {
		ey := h - 600 - float64(i)*((h-750)/float64(max(1, enemies)))
		x := g.float(50, w-50)
		amp := g.float(30, 70)
		speed := g.float(50, 90)
		dir := 1
		if g.rng.Float64() < 0.5 {
			dir = -1
		}
		if int(math.Floor(ey/spacing))%2 != 0 {
			g.flyer(x, ey, amp, speed, dir)
		}
	}

	d.Spawn = vmath.V(w/2, h-100)
	d.Baby = vmath.V(w/2, 50)
}

// escape is a long chase level in front of a rising flood
func (g *generator) escape() {
	n := float64(g.n)
	d := g.d
	d.Name = "Flood Escape"
	d.IsEscape = true
	d.Width = parameter.GenEscapeBaseWidth + n*parameter.GenEscapePerLevelWidth
	d.Height = parameter.GenHeight
	d.WaterY = d.Height - parameter.GenWaterOffset
	d.EscapeSpeed = 120
	speedMult := 1.0
	if g.n == 9 {
		d.EscapeSpeed = 150
		speedMult = 1.15
	}
	waterY, width := d.WaterY, d.Width
	zones := BreathingZones(width, g.n)

	introW := 250.0
	switch {
	case g.n <= 2:
		introW = 300
	case g.n <= 5:
		introW = 280
	}
	d.Platforms = append(d.Platforms, vmath.Rect{X: 0, Y: waterY - 80, W: introW, H: 130})

	introCoins := 10
	switch {
	case g.n <= 2:
		introCoins = 5
	case g.n <= 5:
		introCoins = 8
	}
	for i := 0; i < introCoins; i++ {
		g.coin(50+float64(i)*30, waterY-120-math.Sin(float64(i)/float64(introCoins-1)*math.Pi)*50)
	}
	introEnemies := 2
	if g.n <= 2 {
		introEnemies = 1
	}
	for i := 0; i < introEnemies; i++ {
		g.flyer(250+float64(i)*50, waterY-150-float64(i)*40, 25, 35, 1)
	}

	x := 350.0
	middleEnd := width - 400
	for x < middleEnd {
		r := g.rng.Float64()
		switch {
		case r < 0.4:
			boats := int(g.float(2, 5) * g.density.Platforms)
			laneY := waterY - 60 - g.rng.Float64()*80
			for i := 0; i < boats; i++ {
				bw := g.float(100, 150)
				dir := 1
				if i%2 == 1 {
					dir = -1
				}
				by := laneY + (g.rng.Float64()-0.5)*30
				g.boat(x+float64(i)*180, 180, by, bw, parameter.GenTrajineraH, g.float(30, 55)*speedMult, dir)
				coins := int(math.Ceil(g.density.Coins))
				for c := 0; c < coins; c++ {
					g.coin(x+float64(i)*180+90+float64(c-coins/2)*15, laneY-35)
				}
			}
			x += float64(boats)*180 + 100
		case r < 0.4+0.3*g.density.Platforms:
			stones := int(g.float(3, 6) * g.density.Platforms)
			for i := 0; i < stones; i++ {
				sw := g.float(70, 110)
				sy := waterY - 60 - g.rng.Float64()*100
				d.Platforms = append(d.Platforms, vmath.Rect{X: x + float64(i)*140, Y: sy, W: sw, H: 25})
				if g.rng.Float64() < 0.5*g.density.Coins {
					g.coin(x+float64(i)*140+sw/2, sy-35)
				}
			}
			x += float64(stones)*140 + 80
		default:
			py := waterY - 100 - g.rng.Float64()*80
			d.Platforms = append(d.Platforms, vmath.Rect{X: x, Y: py, W: g.float(90, 130), H: 22})
			g.boat(x+140, 200, waterY-50, g.float(120, 160), parameter.GenTrajineraH, g.float(35, 55)*speedMult, 1)
			g.coin(x+45, py-35)
			if math.Ceil(2*g.density.Coins) > 1 {
				g.coin(x+200, waterY-85)
			}
			x += 350
		}
		if g.rng.Float64() < 0.15*g.preset.PowerupMult {
			g.mushroom(x-100, waterY-150-g.rng.Float64()*100)
		}
	}

	d.Platforms = append(d.Platforms, vmath.Rect{X: width - 350, Y: waterY - 80, W: 350, H: 130})
	guards := 2
	if g.n > 5 {
		guards = 3
	}
	for i := 0; i < guards; i++ {
		dir := 1
		if i%2 == 1 {
			dir = -1
		}
		g.flyer(width-350-150-float64(i)*80, waterY-150-float64(i%2)*50, 25+n*2, 40+n*3, dir)
	}
	g.arrow(width-80, width-180, waterY-120)

	middleStart := 350.0
	middleWidth := middleEnd - middleStart
	d.Stars = append(d.Stars,
		vmath.V(middleStart+middleWidth*0.2, waterY-150),
		vmath.V(middleStart+middleWidth*0.5, waterY-200),
		vmath.V(middleStart+middleWidth*0.8, waterY-120),
	)

	enemies := int(2 * g.preset.EnemyMult * g.density.Enemies)
	for i := 0; i < enemies; i++ {
		ex := middleStart + 450 + float64(i)*(middleWidth/float64(max(1, enemies+1)))
		ey := waterY - 250 - g.rng.Float64()*100
		if !inZone(ex, zones) {
			g.flyer(ex, ey, 30, 50, 1)
		}
	}

	g.mushroom(150, waterY-120)
	g.mushroom(width-200, waterY-120)

	d.Spawn = vmath.V(150, waterY-130)
	d.Baby = vmath.V(width-175, waterY-130)
}

// bossArena is a fixed layout for the Dark Xochi fight; a heron pair guards the baby's ledge
func (g *generator) bossArena() {
	d := g.d
	d.Name = "Boss Arena"
	d.IsBossLevel = true
	d.Width = parameter.GenBossWidth
	if g.n >= parameter.TotalLevels {
		d.Name = "Final Arena"
		d.Width = parameter.GenFinalBossWidth
	}
	d.Height = parameter.GenHeight
	w := d.Width
	groundY := d.Height - 50

	d.Platforms = append(d.Platforms,
		vmath.Rect{X: 0, Y: groundY, W: w, H: 50},
		vmath.Rect{X: 100, Y: groundY - 150, W: 120, H: 20},
		vmath.Rect{X: w - 220, Y: groundY - 150, W: 120, H: 20},
		vmath.Rect{X: w/2 - 80, Y: groundY - 250, W: 160, H: 20},
	)
	g.mushroom(160, groundY-190)
	g.powerUp(PowerUpThunder, w-160, groundY-190)
	g.powerUp(PowerUpFeather, w/2, groundY-290)

	d.Enemies = append(d.Enemies,
		EnemySpawn{Kind: KindHeron, X: w - 300, Y: groundY - 30, Dir: -1},
	)
	if d.Width == parameter.GenFinalBossWidth {
		g.flyer(w/2, groundY-330, 40, 60, 1)
	}

	d.Stars = append(d.Stars,
		vmath.V(160, groundY-230),
		vmath.V(w/2, groundY-300),
		vmath.V(w-160, groundY-230),
	)

	d.Spawn = vmath.V(100, groundY-50)
	d.Baby = vmath.V(w/2, 150)
}
