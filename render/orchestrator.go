package render

import "github.com/gdamore/tcell/v2"

type rendererEntry struct {
	renderer Renderer
	priority Priority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the render pipeline
type Orchestrator struct {
	screen    tcell.Screen
	buffer    *RenderBuffer
	renderers []rendererEntry
	regCount  int
}

// NewOrchestrator creates an orchestrator sized to the screen
func NewOrchestrator(screen tcell.Screen) *Orchestrator {
	w, h := screen.Size()
	return &Orchestrator{
		screen:    screen,
		buffer:    NewRenderBuffer(w, h),
		renderers: make([]rendererEntry, 0, 16),
	}
}

// NewDefaultOrchestrator registers every built-in layer
func NewDefaultOrchestrator(screen tcell.Screen) *Orchestrator {
	o := NewOrchestrator(screen)
	o.Register(skyRenderer{}, PriorityBackground)
	o.Register(terrainRenderer{}, PriorityTerrain)
	o.Register(trajineraRenderer{}, PriorityTerrain)
	o.Register(pickupRenderer{}, PriorityPickup)
	o.Register(enemyRenderer{}, PriorityEntities)
	o.Register(combatRenderer{}, PriorityEntities)
	o.Register(playerRenderer{}, PriorityPlayer)
	o.Register(hazardRenderer{}, PriorityHazard)
	o.Register(hudRenderer{}, PriorityUI)
	o.Register(sceneRenderer{}, PriorityOverlay)
	return o
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(r Renderer, priority Priority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Size returns the terminal dimensions in cells
func (o *Orchestrator) Size() (int, int) {
	return o.buffer.Size()
}

// Resize follows the screen size and syncs the terminal
func (o *Orchestrator) Resize() {
	w, h := o.screen.Size()
	o.buffer.Resize(w, h)
	o.screen.Sync()
}

// Buffer exposes the composited frame
func (o *Orchestrator) Buffer() *RenderBuffer {
	return o.buffer
}

// RenderFrame executes the render pipeline: clear, render all, flush
func (o *Orchestrator) RenderFrame(ctx Context) {
	o.buffer.Clear()
	o.buffer.SetDefaultBackground(backgroundFor(ctx))

	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, o.buffer)
	}

	o.buffer.Flush(o.screen)
}
