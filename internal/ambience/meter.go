package ambience

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// meter wraps a beep.Streamer and records the last N samples into a ring
// buffer so the HUD can show how loud the ambience currently is.
type meter struct {
	Source    beep.Streamer
	buffer    [][2]float64
	nextIndex int
	mu        sync.RWMutex
}

func newMeter(src beep.Streamer, ringSize int) *meter {
	return &meter{
		Source: src,
		buffer: make([][2]float64, ringSize),
	}
}

func (m *meter) Stream(samples [][2]float64) (int, bool) {
	n, ok := m.Source.Stream(samples)
	if n > 0 {
		m.mu.Lock()
		for i := 0; i < n; i++ {
			m.buffer[m.nextIndex] = samples[i]
			m.nextIndex++
			if m.nextIndex >= len(m.buffer) {
				m.nextIndex = 0
			}
		}
		m.mu.Unlock()
	}
	return n, ok
}

func (m *meter) Err() error { return m.Source.Err() }

// level is the RMS of the last n mono-mixed samples, in [0,1] for
// unclipped input.
func (m *meter) level(n int) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if n > len(m.buffer) {
		n = len(m.buffer)
	}
	if n <= 0 {
		return 0
	}
	var sum float64
	idx := m.nextIndex - 1
	for i := 0; i < n; i++ {
		if idx < 0 {
			idx = len(m.buffer) - 1
		}
		mono := (m.buffer[idx][0] + m.buffer[idx][1]) * 0.5
		sum += mono * mono
		idx--
	}
	return math.Sqrt(sum / float64(n))
}
