package status

import (
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/vi-lockpick/actuator"
	"github.com/lixenwraith/vi-lockpick/engine"
)

func TestAtomicFloat(t *testing.T) {
	var f AtomicFloat
	if f.Get() != 0 {
		t.Errorf("zero value mismatch: got %v", f.Get())
	}
	f.Set(-0.75)
	if f.Get() != -0.75 {
		t.Errorf("Get mismatch: got %v", f.Get())
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Errorf("zero value mismatch: got %q", s.Load())
	}
	s.Store("recovering-with-a-very-long-label")
	if len(s.Load()) != MaxStringLen {
		t.Errorf("truncation mismatch: got %q", s.Load())
	}
}

func TestBoardPublishView(t *testing.T) {
	b := NewBoard()
	if snap := b.Snapshot(); snap.PickLife != 1 || snap.MaxTension != 1 {
		t.Errorf("initial board mismatch: %+v", snap)
	}

	b.PublishView(engine.View{
		Elapsed:          1500 * time.Millisecond,
		Difficulty:       42,
		CylinderRotation: 0.4,
		CylinderState:    actuator.CylinderStuck,
		MaxTension:       0.4,
		PickRotation:     -0.3,
		PickLife:         0.6,
		PickState:        actuator.PickBreaking,
	})
	b.Breaks.Store(2)
	b.Phase.Store("playing")

	snap := b.Snapshot()
	if snap.CylinderRotation != 0.4 || snap.CylinderState != actuator.CylinderStuck {
		t.Errorf("cylinder mismatch: %+v", snap)
	}
	if snap.PickRotation != -0.3 || snap.PickLife != 0.6 || snap.PickState != actuator.PickBreaking {
		t.Errorf("pick mismatch: %+v", snap)
	}
	if snap.Difficulty != 42 || snap.Breaks != 2 || snap.Elapsed != 1500*time.Millisecond || snap.Phase != "playing" {
		t.Errorf("session mismatch: %+v", snap)
	}
}

// TestBoardConcurrentReaders exercises one writer with several readers under -race
func TestBoardConcurrentReaders(t *testing.T) {
	b := NewBoard()
	var wg sync.WaitGroup
	stop := make(chan struct{})

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
					snap := b.Snapshot()
					if snap.PickLife < 0 || snap.PickLife > 1 {
						t.Errorf("torn life: %v", snap.PickLife)
						return
					}
				}
			}
		}()
	}

	for i := 0; i <= 1000; i++ {
		b.PublishView(engine.View{PickLife: float64(i) / 1000})
	}
	close(stop)
	wg.Wait()
}
