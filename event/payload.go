package event

// LevelPayload carries a level number
type LevelPayload struct {
	Level int `toml:"level"`
}

// WorldPayload carries the world being entered and its first level
type WorldPayload struct {
	World int `toml:"world"`
	Level int `toml:"level"`
}

// ScorePayload carries points awarded at a world position
type ScorePayload struct {
	Points int     `toml:"points"`
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
}

// StarPayload identifies a collected star
type StarPayload struct {
	ID string `toml:"id"`
}

// UnlockPayload identifies an unlocked customization
type UnlockPayload struct {
	Kind string `toml:"kind"` // "color" or "accessory"
	ID   string `toml:"id"`
}

// BossPayload carries the boss health after a hit
type BossPayload struct {
	Health    int `toml:"health"`
	MaxHealth int `toml:"max_health"`
}
