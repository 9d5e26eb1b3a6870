package models

import "sync"

// MemoryStack is the calculator memory register. Values are only appended
// or cleared; recall reads the most recent one.
type MemoryStack struct {
	mu     sync.RWMutex
	values []float64
}

// NewMemoryStack creates an empty memory register
func NewMemoryStack() *MemoryStack {
	return &MemoryStack{values: make([]float64, 0)}
}

// Push appends a value to the register
func (m *MemoryStack) Push(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = append(m.values, v)
}

// Last returns the most recently stored value, or false when empty
func (m *MemoryStack) Last() (float64, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.values) == 0 {
		return 0, false
	}
	return m.values[len(m.values)-1], true
}

// Clear empties the register
func (m *MemoryStack) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = m.values[:0]
}

// Len returns the number of stored values
func (m *MemoryStack) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.values)
}
