package level

import (
	"github.com/lixenwraith/xochi/parameter"
	"github.com/lixenwraith/xochi/vmath"
)

// World is the themed group a level belongs to
type World struct {
	Number   int
	Name     string
	Subtitle string
}

var worlds = [parameter.TotalWorlds]World{
	{1, "Canal Dawn", "El Amanecer"},
	{2, "Bright Trajineras", "Trajineras Brillantes"},
	{3, "Crystal Cave", "Cueva de Cristal"},
	{4, "Floating Gardens", "Jardines Flotantes"},
	{5, "Night Canals", "Canales de Noche"},
	{6, "The Grand Festival", "La Gran Fiesta"},
}

// firstLevels[w-1] is the first level of world w
var firstLevels = [parameter.TotalWorlds]int{1, 3, 5, 6, 8, 10}

// WorldForLevel maps a level to its world number
// Below 1 clamps to world 1, above the last level to the last world
func WorldForLevel(n int) int {
	switch {
	case n <= 2:
		return 1
	case n <= 4:
		return 2
	case n == 5:
		return 3
	case n <= 7:
		return 4
	case n <= 9:
		return 5
	default:
		return 6
	}
}

// FirstLevelOfWorld returns the entry level of world w; unknown worlds map to level 1
func FirstLevelOfWorld(w int) int {
	if w < 1 || w > parameter.TotalWorlds {
		return 1
	}
	return firstLevels[w-1]
}

// IsWorldBoundary reports whether entering level n starts a new world
func IsWorldBoundary(n int) bool {
	return n > 1 && n <= parameter.TotalLevels && FirstLevelOfWorld(WorldForLevel(n)) == n
}

// WorldInfo returns the theme for world w, world 1 when out of range
func WorldInfo(w int) World {
	if w < 1 || w > parameter.TotalWorlds {
		return worlds[0]
	}
	return worlds[w-1]
}

// ClampLevel bounds n to the playable range
func ClampLevel(n int) int {
	return vmath.ClampInt(n, 1, parameter.TotalLevels)
}
