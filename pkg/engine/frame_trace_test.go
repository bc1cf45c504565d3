package engine

import (
	"testing"
	"time"

	"github.com/go-drift/mousearea/pkg/core"
)

func TestFrameTraceBuffer_Wraps(t *testing.T) {
	b := NewFrameTraceBuffer(3, 10*time.Millisecond)
	for i := 1; i <= 5; i++ {
		b.Add(FrameSample{Timestamp: int64(i), FrameMs: float64(i * 4), Relayout: i%2 == 1})
	}

	timeline := b.Snapshot()
	if len(timeline.Samples) != 3 {
		t.Fatalf("got %d samples, want 3", len(timeline.Samples))
	}
	for i, want := range []int64{3, 4, 5} {
		if timeline.Samples[i].Timestamp != want {
			t.Errorf("sample %d timestamp = %d, want %d", i, timeline.Samples[i].Timestamp, want)
		}
	}
	// 12ms, 16ms and 20ms exceed the 10ms budget.
	if timeline.DroppedFrames != 3 {
		t.Errorf("DroppedFrames = %d, want 3", timeline.DroppedFrames)
	}
	if timeline.ThresholdMs != 10 {
		t.Errorf("ThresholdMs = %v, want 10", timeline.ThresholdMs)
	}
	if timeline.Relayouts != 2 {
		t.Errorf("Relayouts = %d, want 2", timeline.Relayouts)
	}
	if timeline.MaxFrameMs != 20 {
		t.Errorf("MaxFrameMs = %v, want 20", timeline.MaxFrameMs)
	}
}

func TestFrameTraceBuffer_PartialFill(t *testing.T) {
	b := NewFrameTraceBuffer(4, time.Second)
	b.Add(FrameSample{Timestamp: 1})
	b.Add(FrameSample{Timestamp: 2})

	samples := b.Snapshot().Samples
	if len(samples) != 2 || samples[0].Timestamp != 1 || samples[1].Timestamp != 2 {
		t.Errorf("samples = %+v", samples)
	}
}

func TestFrameTraceBuffer_Defaults(t *testing.T) {
	b := NewFrameTraceBuffer(0, 0)
	if b.Capacity() != defaultTraceCapacity {
		t.Errorf("Capacity() = %d, want %d", b.Capacity(), defaultTraceCapacity)
	}
	if got := b.Snapshot(); len(got.Samples) != 0 || got.ThresholdMs != millis(defaultFrameBudget) {
		t.Errorf("empty snapshot = %+v", got)
	}
}

func TestCountTree(t *testing.T) {
	tree := &core.Tree{Children: []*core.Tree{{}, {Children: []*core.Tree{{}}}}}
	if got := countTree(tree); got != 4 {
		t.Errorf("countTree() = %d, want 4", got)
	}
	if got := countTree(nil); got != 0 {
		t.Errorf("countTree(nil) = %d, want 0", got)
	}
}
