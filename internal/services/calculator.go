package services

import (
	"sync/atomic"

	"desk-calculator/internal/calc"
	"desk-calculator/internal/history"
	"desk-calculator/internal/logger"
	"desk-calculator/internal/models"
)

// CalculatorStats summarises the session for logging
type CalculatorStats struct {
	Evaluations  int64
	Failures     int64
	HistorySize  int
	MemorySize   int
	PersistFails int64
	LastOperator calc.Operator
}

// CalculatorService runs evaluations against the calculator state and
// keeps the memory register and history in step with the result.
type CalculatorService struct {
	state   *models.CalculatorState
	memory  *models.MemoryStack
	history *models.HistoryLog
	store   *history.Store
	logger  logger.Logger

	evaluations  atomic.Int64
	failures     atomic.Int64
	persistFails atomic.Int64
}

// NewCalculatorService creates the service; historyLog should already hold
// the entries loaded from store.
func NewCalculatorService(
	state *models.CalculatorState,
	memory *models.MemoryStack,
	historyLog *models.HistoryLog,
	store *history.Store,
	log logger.Logger,
) *CalculatorService {
	return &CalculatorService{
		state:   state,
		memory:  memory,
		history: historyLog,
		store:   store,
		logger:  log,
	}
}

// LoadHistory reads the persisted history into a new HistoryLog. Read
// failures are logged and yield whatever was read before the failure.
func LoadHistory(store *history.Store, log logger.Logger) *models.HistoryLog {
	entries, err := store.Load()
	if err != nil {
		log.Warning("CalculatorService", "history load failed", map[string]interface{}{
			"path":  store.Path(),
			"error": err.Error(),
		})
	}
	return models.NewHistoryLog(entries)
}

// SetOperands records the current text of both input fields
func (s *CalculatorService) SetOperands(num1, num2 string) {
	s.state.SetOperands(num1, num2)
}

// Calculate evaluates op on the current operands and returns the new result
// text. Successful evaluations are appended to the history and persisted;
// a persistence failure is logged but does not affect the result.
func (s *CalculatorService) Calculate(op calc.Operator) string {
	s.state.SetSelectedOperator(op)
	num1, num2 := s.state.Operands()

	s.evaluations.Add(1)
	value, err := calc.Compute(op, num1, num2)
	if err != nil {
		s.failures.Add(1)
		result := calc.FormatError(err)
		s.state.SetResult(result)
		s.logger.Debug("CalculatorService", "evaluation rejected", map[string]interface{}{
			"operator": op.String(),
			"reason":   err.Error(),
		})
		return result
	}

	result := calc.FormatResult(value)
	s.state.SetResult(result)

	entry := calc.HistoryEntry(op, num1, num2, result)
	s.history.Append(entry)
	if err := s.store.Append(entry); err != nil {
		s.persistFails.Add(1)
		s.logger.Warning("CalculatorService", "history append failed", map[string]interface{}{
			"entry": entry,
			"error": err.Error(),
		})
	}

	s.logger.Debug("CalculatorService", "evaluation completed", map[string]interface{}{
		"entry": entry,
	})
	return result
}

// StoreMemory pushes the current result onto the memory register if it is
// numeric. It reports whether a value was stored.
func (s *CalculatorService) StoreMemory() bool {
	value, err := calc.ParseOperand(s.state.Result())
	if err != nil {
		return false
	}
	s.memory.Push(value)
	return true
}

// RecallMemory overwrites the result with the last stored value. It reports
// whether the register held anything.
func (s *CalculatorService) RecallMemory() bool {
	value, ok := s.memory.Last()
	if !ok {
		return false
	}
	s.state.SetResult(calc.FormatResult(value))
	return true
}

// ClearMemory empties the memory register
func (s *CalculatorService) ClearMemory() {
	s.memory.Clear()
}

// SetLightMode records the theme flag
func (s *CalculatorService) SetLightMode(light bool) {
	s.state.SetLightMode(light)
}

func (s *CalculatorService) LightMode() bool {
	return s.state.LightMode()
}

func (s *CalculatorService) Result() string {
	return s.state.Result()
}

// History returns all history entries, oldest first
func (s *CalculatorService) History() []string {
	return s.history.Entries()
}

// GetStats returns counters for the current session
func (s *CalculatorService) GetStats() CalculatorStats {
	return CalculatorStats{
		Evaluations:  s.evaluations.Load(),
		Failures:     s.failures.Load(),
		HistorySize:  s.history.Len(),
		MemorySize:   s.memory.Len(),
		PersistFails: s.persistFails.Load(),
		LastOperator: s.state.SelectedOperator(),
	}
}

// Shutdown logs the session summary
func (s *CalculatorService) Shutdown() {
	stats := s.GetStats()
	s.logger.Info("CalculatorService", "session finished", map[string]interface{}{
		"evaluations":   stats.Evaluations,
		"failures":      stats.Failures,
		"history_size":  stats.HistorySize,
		"memory_size":   stats.MemorySize,
		"persist_fails": stats.PersistFails,
		"last_operator": stats.LastOperator.String(),
	})
}
