package parameter

// Camera dead zone configuration
// Dead zone is the inner area where player movement doesn't trigger camera scroll
// Margin is the outer area between dead zone and viewport edge
const (
	// CameraDeadZoneMarginX is horizontal margin in world pixels from viewport edge
	CameraDeadZoneMarginX = 300.0

	// CameraDeadZoneMarginY is vertical margin in world pixels from viewport edge
	CameraDeadZoneMarginY = 180.0

	// CameraUpscrollerLead holds the player this far below center on upscroller levels
	CameraUpscrollerLead = 120.0

	// Default viewport in world pixels
	ViewportWidth  = 800.0
	ViewportHeight = 600.0
)
