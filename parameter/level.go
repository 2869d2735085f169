package parameter

// Hand-authored catalog
const (
	// AuthoredLevels is the count of levels loaded from embedded data
	AuthoredLevels = 6
)

// Generated level layout
const (
	GenBaseWidth      = 2000.0
	GenWidthPerLevel  = 200.0
	GenHeight         = 600.0
	GenWaterOffset    = 40.0
	GenSectionWidth   = 300.0
	GenSpeedPerLevel  = 0.08
	GenTrajineraH     = 28.0
	GenBreathingWidth = 200.0

	GenUpscrollerWidth     = 600.0
	GenUpscrollerBaseH     = 2500.0
	GenUpscrollerPerLevelH = 200.0

	GenEscapeBaseWidth     = 3500.0
	GenEscapePerLevelWidth = 300.0

	GenBossWidth      = 800.0
	GenFinalBossWidth = 1000.0
)
