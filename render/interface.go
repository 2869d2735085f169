package render

// Renderer draws one layer of the frame
type Renderer interface {
	Render(ctx Context, buf *RenderBuffer)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

// Priority determines render order. Lower values render first
type Priority int

const (
	PriorityBackground Priority = iota
	PriorityTerrain
	PriorityPickup
	PriorityEntities
	PriorityPlayer
	PriorityHazard
	PriorityUI
	PriorityOverlay
)
