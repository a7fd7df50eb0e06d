package mqtt

import (
	"fmt"
	"sync"

	"github.com/enerva/fuelcore/core/metrics"
)

// FakePublisher is a simple in-memory publisher used in tests.
type FakePublisher struct {
	mu       sync.Mutex
	Readings []metrics.ProductionRecord
	Fail     bool
	Closed   bool
}

// NewFakePublisher creates a new FakePublisher.
func NewFakePublisher() *FakePublisher {
	return &FakePublisher{}
}

// PublishReading records the reading or returns an error if configured to
// fail.
func (f *FakePublisher) PublishReading(rec metrics.ProductionRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Fail {
		return fmt.Errorf("publish failed")
	}
	f.Readings = append(f.Readings, rec)
	return nil
}

// Close marks the publisher as closed.
func (f *FakePublisher) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Closed = true
}
