package engine

import (
	"sync"
	"time"

	"github.com/go-drift/mousearea/pkg/core"
)

const (
	defaultTraceCapacity = 240
	defaultFrameBudget   = time.Second / 60
)

// FramePhaseTimings captures time spent in each frame phase (ms).
type FramePhaseTimings struct {
	LayoutMs  float64 `json:"layoutMs"`
	DrawMs    float64 `json:"drawMs"`
	OverlayMs float64 `json:"overlayMs"`
}

// FrameCounts captures what happened since the previous frame.
type FrameCounts struct {
	Invalidations int `json:"invalidations"`
	Messages      int `json:"messages"`
	TreeNodes     int `json:"treeNodes"`
}

// FrameSample is a single frame trace sample.
type FrameSample struct {
	Timestamp int64             `json:"ts"`
	FrameMs   float64           `json:"frameMs"`
	Relayout  bool              `json:"relayout"`
	Phases    FramePhaseTimings `json:"phases"`
	Counts    FrameCounts       `json:"counts"`
}

// Over reports whether the frame took longer than budget.
func (s FrameSample) Over(budget time.Duration) bool {
	return s.FrameMs > millis(budget)
}

// FrameTimeline is a chronological view of the retained samples.
type FrameTimeline struct {
	Samples []FrameSample `json:"samples"`
	// DroppedFrames counts every over-budget frame ever added, including
	// samples the ring has since overwritten.
	DroppedFrames int     `json:"droppedFrames"`
	ThresholdMs   float64 `json:"thresholdMs"`
	Relayouts     int     `json:"relayouts"`
	MaxFrameMs    float64 `json:"maxFrameMs"`
}

// FrameTraceBuffer keeps the most recent frame samples in a ring.
type FrameTraceBuffer struct {
	mu      sync.Mutex
	ring    []FrameSample
	next    int
	full    bool
	dropped int
	budget  time.Duration
}

// NewFrameTraceBuffer returns a buffer holding capacity samples that counts
// frames slower than budget as dropped. Non-positive arguments select 240
// samples and a 60Hz budget.
func NewFrameTraceBuffer(capacity int, budget time.Duration) *FrameTraceBuffer {
	if capacity <= 0 {
		capacity = defaultTraceCapacity
	}
	if budget <= 0 {
		budget = defaultFrameBudget
	}
	return &FrameTraceBuffer{ring: make([]FrameSample, capacity), budget: budget}
}

// Capacity returns how many samples the buffer retains.
func (b *FrameTraceBuffer) Capacity() int {
	return len(b.ring)
}

// Add records a sample, overwriting the oldest once the ring is full.
func (b *FrameTraceBuffer) Add(sample FrameSample) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if sample.Over(b.budget) {
		b.dropped++
	}
	b.ring[b.next] = sample
	b.next++
	if b.next == len(b.ring) {
		b.next = 0
		b.full = true
	}
}

// Snapshot returns the retained samples oldest first, with totals.
func (b *FrameTraceBuffer) Snapshot() FrameTimeline {
	b.mu.Lock()
	defer b.mu.Unlock()

	n, start := b.next, 0
	if b.full {
		n, start = len(b.ring), b.next
	}
	timeline := FrameTimeline{
		Samples:       make([]FrameSample, 0, n),
		DroppedFrames: b.dropped,
		ThresholdMs:   millis(b.budget),
	}
	for i := 0; i < n; i++ {
		sample := b.ring[(start+i)%len(b.ring)]
		timeline.Samples = append(timeline.Samples, sample)
		if sample.Relayout {
			timeline.Relayouts++
		}
		timeline.MaxFrameMs = max(timeline.MaxFrameMs, sample.FrameMs)
	}
	return timeline
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func countTree(tree *core.Tree) int {
	if tree == nil {
		return 0
	}
	count := 1
	for _, child := range tree.Children {
		count += countTree(child)
	}
	return count
}
