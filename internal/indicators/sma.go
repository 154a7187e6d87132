package indicators

import "errors"

// ErrInsufficientData is returned while the window has fewer observations
// than its capacity.
var ErrInsufficientData = errors.New("insufficient data for moving average")

// PriceWindow maintains the last N close prices with FIFO eviction and
// computes their simple moving average. O(1) per observation.
type PriceWindow struct {
	capacity int
	prices   []float64
	sum      float64
}

// NewPriceWindow creates a rolling window of the given capacity.
// Capacity must be >= 1; configuration validation enforces this upstream.
func NewPriceWindow(capacity int) *PriceWindow {
	return &PriceWindow{
		capacity: capacity,
		prices:   make([]float64, 0, capacity),
	}
}

// Push appends an observation, evicting the oldest once the window is full.
func (w *PriceWindow) Push(close float64) {
	if len(w.prices) == w.capacity {
		w.sum -= w.prices[0]
		w.prices = w.prices[1:]
	}
	w.prices = append(w.prices, close)
	w.sum += close
}

// Full reports whether the window holds capacity observations.
func (w *PriceWindow) Full() bool {
	return len(w.prices) == w.capacity
}

// Size returns the current number of observations.
func (w *PriceWindow) Size() int {
	return len(w.prices)
}

// Capacity returns the configured window size.
func (w *PriceWindow) Capacity() int {
	return w.capacity
}

// Average returns the arithmetic mean of the window, or ErrInsufficientData
// while the window is still warming up.
func (w *PriceWindow) Average() (float64, error) {
	if !w.Full() {
		return 0, ErrInsufficientData
	}
	return w.sum / float64(w.capacity), nil
}

// Reset clears all observations.
func (w *PriceWindow) Reset() {
	w.prices = make([]float64, 0, w.capacity)
	w.sum = 0
}
