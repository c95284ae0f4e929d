package app

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Metrics tracks how long the event loop spends on input and drawing.
// It is safe for concurrent use.
type Metrics struct {
	// Event handling
	eventCount   atomic.Uint64
	eventTotalNs atomic.Int64
	eventMaxNs   atomic.Int64

	// Render timing
	renderCount   atomic.Uint64
	renderTotalNs atomic.Int64

	// Edits that changed the document
	editCount atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordEvent records the time taken to handle one event.
func (m *Metrics) RecordEvent(duration time.Duration) {
	ns := duration.Nanoseconds()
	m.eventCount.Add(1)
	m.eventTotalNs.Add(ns)

	for {
		old := m.eventMaxNs.Load()
		if ns <= old || m.eventMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordRender records the time taken to draw one frame.
func (m *Metrics) RecordRender(duration time.Duration) {
	m.renderCount.Add(1)
	m.renderTotalNs.Add(duration.Nanoseconds())
}

// RecordEdit counts an event that modified the document.
func (m *Metrics) RecordEdit() {
	m.editCount.Add(1)
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	s := MetricsSnapshot{
		Uptime:      time.Since(m.startTime),
		EventCount:  m.eventCount.Load(),
		MaxEvent:    time.Duration(m.eventMaxNs.Load()),
		RenderCount: m.renderCount.Load(),
		EditCount:   m.editCount.Load(),
	}
	if s.EventCount > 0 {
		s.AvgEvent = time.Duration(m.eventTotalNs.Load() / int64(s.EventCount))
	}
	if s.RenderCount > 0 {
		s.AvgRender = time.Duration(m.renderTotalNs.Load() / int64(s.RenderCount))
	}
	return s
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime      time.Duration
	EventCount  uint64
	AvgEvent    time.Duration
	MaxEvent    time.Duration
	RenderCount uint64
	AvgRender   time.Duration
	EditCount   uint64
}

// String formats the snapshot for the log.
func (s MetricsSnapshot) String() string {
	return fmt.Sprintf("uptime=%s events=%d avg_event=%s max_event=%s renders=%d avg_render=%s edits=%d",
		s.Uptime.Round(time.Second), s.EventCount, s.AvgEvent, s.MaxEvent, s.RenderCount, s.AvgRender, s.EditCount)
}

// Metrics returns the application's metrics instance.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}
