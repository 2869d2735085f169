package physics

import "github.com/lixenwraith/xochi/parameter"

// Profile is the static body shape and flags for an entity kind
// Profiles are package variables shared by every instance
type Profile struct {
	W, H     float64
	Gravity  bool
	Collides bool
}

var PlayerProfile = Profile{
	W: parameter.PlayerWidth, H: parameter.PlayerSmallHeight,
	Gravity: true, Collides: true,
}

var GullProfile = Profile{
	W: parameter.GullWidth, H: parameter.GullHeight,
	Gravity: true, Collides: true,
}

var HeronProfile = Profile{
	W: parameter.HeronWidth, H: parameter.HeronHeight,
	Gravity: true, Collides: true,
}

var BossProfile = Profile{
	W: parameter.BossWidth, H: parameter.BossHeight,
	Gravity: true, Collides: true,
}

// FlyerProfile ignores gravity and terrain; motion is scripted
var FlyerProfile = Profile{
	W: parameter.HeronWidth, H: parameter.HeronWidth,
}
