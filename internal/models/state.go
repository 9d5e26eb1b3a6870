package models

import (
	"sync"

	"desk-calculator/internal/calc"
)

// CalculatorState holds the editable inputs and visible outputs of the
// calculator window. It is owned by the calculator service.
type CalculatorState struct {
	mu               sync.RWMutex
	num1             string
	num2             string
	result           string
	selectedOperator calc.Operator
	lightMode        bool
}

// NewCalculatorState creates an empty state with dark visuals
func NewCalculatorState() *CalculatorState {
	return &CalculatorState{}
}

// SetOperands records the raw text of both input fields
func (s *CalculatorState) SetOperands(num1, num2 string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.num1 = num1
	s.num2 = num2
}

// Operands returns the raw text of both input fields
func (s *CalculatorState) Operands() (string, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.num1, s.num2
}

func (s *CalculatorState) SetResult(result string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = result
}

func (s *CalculatorState) Result() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result
}

func (s *CalculatorState) SetSelectedOperator(op calc.Operator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedOperator = op
}

func (s *CalculatorState) SelectedOperator() calc.Operator {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedOperator
}

// SetLightMode records the theme flag; it is not persisted
func (s *CalculatorState) SetLightMode(light bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lightMode = light
}

func (s *CalculatorState) LightMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lightMode
}
