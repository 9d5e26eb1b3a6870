package controllers

import (
	"sync"

	"desk-calculator/internal/calc"
	"desk-calculator/internal/logger"
	"desk-calculator/internal/services"
	"desk-calculator/internal/views"
)

// Event names emitted by the controller
const (
	EventCalculated    = "calculated"
	EventMemoryChanged = "memory_changed"
	EventThemeChanged  = "theme_changed"
)

// MainController connects the calculator view to the calculator service.
// View callbacks run on the Fyne event goroutine, so every handler runs to
// completion before the next redraw.
type MainController struct {
	service  *services.CalculatorService
	mainView *views.MainView
	logger   logger.Logger

	// Event handlers
	eventHandlers map[string][]EventHandler
	eventMu       sync.RWMutex
}

// EventHandler represents a function that handles application events
type EventHandler func(data interface{}) error

// NewMainController creates a new main controller
func NewMainController(service *services.CalculatorService, log logger.Logger) *MainController {
	controller := &MainController{
		service:       service,
		logger:        log,
		eventHandlers: make(map[string][]EventHandler),
	}

	controller.initializeEventHandlers()
	return controller
}

// SetMainView associates the main view with this controller and renders
// the current state into it
func (mc *MainController) SetMainView(view *views.MainView) {
	mc.mainView = view
	mc.setupViewEventHandlers()
	mc.render()
}

// UpdateOperands records the text of both input fields
func (mc *MainController) UpdateOperands(num1, num2 string) {
	mc.service.SetOperands(num1, num2)
}

// Calculate evaluates the selected operator on the current operands
func (mc *MainController) Calculate(op calc.Operator) {
	before := len(mc.service.History())
	result := mc.service.Calculate(op)

	if mc.mainView != nil {
		mc.mainView.SetResult(result)
		history := mc.service.History()
		if len(history) > before {
			if err := mc.mainView.AppendHistory(history[len(history)-1]); err != nil {
				mc.logger.Error("MainController", err, map[string]interface{}{"action": "append_history"})
			}
		}
	}

	mc.emitEvent(EventCalculated, map[string]interface{}{
		"operator": op.String(),
		"result":   result,
	})
}

// StoreMemory pushes the current result onto the memory register
func (mc *MainController) StoreMemory() {
	if !mc.service.StoreMemory() {
		return
	}
	mc.refreshMemory()
	mc.emitEvent(EventMemoryChanged, "store")
}

// RecallMemory shows the last stored value as the result
func (mc *MainController) RecallMemory() {
	if !mc.service.RecallMemory() {
		return
	}
	if mc.mainView != nil {
		mc.mainView.SetResult(mc.service.Result())
	}
	mc.emitEvent(EventMemoryChanged, "recall")
}

// ClearMemory empties the memory register
func (mc *MainController) ClearMemory() {
	mc.service.ClearMemory()
	mc.refreshMemory()
	mc.emitEvent(EventMemoryChanged, "clear")
}

// SetLightMode switches between the light and dark theme. A checked
// "Light mode" toggle always means light visuals.
func (mc *MainController) SetLightMode(light bool) {
	mc.service.SetLightMode(light)
	if mc.mainView != nil {
		mc.mainView.ApplyTheme(light)
	}
	mc.emitEvent(EventThemeChanged, light)
}

// AddEventListener registers a handler for one of the controller events
func (mc *MainController) AddEventListener(eventType string, handler EventHandler) {
	mc.eventMu.Lock()
	defer mc.eventMu.Unlock()
	mc.eventHandlers[eventType] = append(mc.eventHandlers[eventType], handler)
}

func (mc *MainController) initializeEventHandlers() {
	mc.AddEventListener(EventCalculated, func(data interface{}) error {
		mc.logger.Debug("MainController", "calculation handled", data.(map[string]interface{}))
		return nil
	})
	mc.AddEventListener(EventThemeChanged, func(data interface{}) error {
		mc.logger.Debug("MainController", "theme changed", map[string]interface{}{"light": data})
		return nil
	})
}

func (mc *MainController) setupViewEventHandlers() {
	if mc.mainView == nil {
		return
	}

	mc.mainView.SetOperandsChangeHandler(mc.UpdateOperands)
	mc.mainView.SetOperatorHandler(mc.Calculate)
	mc.mainView.SetMemoryStoreHandler(mc.StoreMemory)
	mc.mainView.SetMemoryRecallHandler(mc.RecallMemory)
	mc.mainView.SetMemoryClearHandler(mc.ClearMemory)
	mc.mainView.SetThemeChangeHandler(mc.SetLightMode)
}

func (mc *MainController) render() {
	if mc.mainView == nil {
		return
	}

	mc.service.SetOperands(mc.mainView.GetOperands())
	mc.mainView.SetResult(mc.service.Result())
	if err := mc.mainView.SetHistory(mc.service.History()); err != nil {
		mc.logger.Error("MainController", err, map[string]interface{}{"action": "set_history"})
	}
	mc.mainView.ApplyTheme(mc.service.LightMode())
	mc.refreshMemory()
}

func (mc *MainController) refreshMemory() {
	if mc.mainView != nil {
		mc.mainView.SetMemoryInfo(mc.service.GetStats().MemorySize)
	}
}

func (mc *MainController) emitEvent(eventType string, data interface{}) {
	mc.eventMu.RLock()
	handlers := mc.eventHandlers[eventType]
	mc.eventMu.RUnlock()

	for _, handler := range handlers {
		if err := handler(data); err != nil {
			mc.logger.Error("MainController", err, map[string]interface{}{
				"event": eventType,
			})
		}
	}
}

// Shutdown flushes the session summary
func (mc *MainController) Shutdown() {
	mc.service.Shutdown()
}
