package views

import (
	"desk-calculator/internal/calc"
	"desk-calculator/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// MainView is the calculator window: operand fields, operator keypad,
// result line, memory toolbar and the history panel.
type MainView struct {
	// UI Components
	app           fyne.App
	window        fyne.Window
	mainContainer *fyne.Container
	operands      *components.OperandPanel
	keypad        *components.Keypad
	statusBar     *components.StatusBar
	toolbar       *components.Toolbar
	historyPanel  *components.HistoryPanel

	// Event handlers - connected to controller
	operandsChangeHandler func(string, string)
	operatorHandler       func(calc.Operator)
	memoryStoreHandler    func()
	memoryRecallHandler   func()
	memoryClearHandler    func()
	themeChangeHandler    func(bool)
}

// NewMainView creates the main view and sets it as the window content
func NewMainView(app fyne.App, window fyne.Window) *MainView {
	view := &MainView{
		app:    app,
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.operands = components.NewOperandPanel()
	mv.keypad = components.NewKeypad()
	mv.statusBar = components.NewStatusBar()
	mv.toolbar = components.NewToolbar()
	mv.historyPanel = components.NewHistoryPanel()
}

func (mv *MainView) buildLayout() {
	heading := widget.NewLabelWithStyle("🧮 Calculator", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	topArea := container.NewVBox(
		heading,
		mv.operands.GetContainer(),
		widget.NewLabel("Operator:"),
		mv.keypad.GetContainer(),
		mv.statusBar.GetContainer(),
		widget.NewSeparator(),
		mv.toolbar.GetContainer(),
		widget.NewSeparator(),
	)

	mv.mainContainer = container.NewBorder(
		topArea, // top
		nil,     // bottom
		nil,     // left
		nil,     // right
		mv.historyPanel.GetContainer(), // center
	)

	mv.window.SetContent(mv.mainContainer)
}

// setupEventHandlers forwards component events to the controller handlers
func (mv *MainView) setupEventHandlers() {
	mv.operands.SetChangeHandler(func(num1, num2 string) {
		if mv.operandsChangeHandler != nil {
			mv.operandsChangeHandler(num1, num2)
		}
	})

	mv.keypad.SetOperatorHandler(func(op calc.Operator) {
		if mv.operatorHandler != nil {
			mv.operatorHandler(op)
		}
	})

	mv.toolbar.SetStoreHandler(func() {
		if mv.memoryStoreHandler != nil {
			mv.memoryStoreHandler()
		}
	})

	mv.toolbar.SetRecallHandler(func() {
		if mv.memoryRecallHandler != nil {
			mv.memoryRecallHandler()
		}
	})

	mv.toolbar.SetClearHandler(func() {
		if mv.memoryClearHandler != nil {
			mv.memoryClearHandler()
		}
	})

	mv.toolbar.SetThemeHandler(func(light bool) {
		if mv.themeChangeHandler != nil {
			mv.themeChangeHandler(light)
		}
	})
}

// Event handler setters - called by controller

func (mv *MainView) SetOperandsChangeHandler(handler func(string, string)) {
	mv.operandsChangeHandler = handler
}

func (mv *MainView) SetOperatorHandler(handler func(calc.Operator)) {
	mv.operatorHandler = handler
}

func (mv *MainView) SetMemoryStoreHandler(handler func()) {
	mv.memoryStoreHandler = handler
}

func (mv *MainView) SetMemoryRecallHandler(handler func()) {
	mv.memoryRecallHandler = handler
}

func (mv *MainView) SetMemoryClearHandler(handler func()) {
	mv.memoryClearHandler = handler
}

func (mv *MainView) SetThemeChangeHandler(handler func(bool)) {
	mv.themeChangeHandler = handler
}

// UI update methods - called by controller on the UI goroutine

// GetOperands returns the raw text of both input fields
func (mv *MainView) GetOperands() (string, string) {
	return mv.operands.GetOperands()
}

// SetResult updates the result line
func (mv *MainView) SetResult(result string) {
	mv.statusBar.SetResult(result)
}

// SetMemoryInfo updates the memory register indicator
func (mv *MainView) SetMemoryInfo(count int) {
	mv.statusBar.SetMemoryInfo(count)
}

// SetHistory replaces the history list
func (mv *MainView) SetHistory(entries []string) error {
	return mv.historyPanel.SetEntries(entries)
}

// AppendHistory adds one entry to the history list
func (mv *MainView) AppendHistory(entry string) error {
	return mv.historyPanel.AppendEntry(entry)
}

// ApplyTheme installs the light or dark theme and syncs the toggle
func (mv *MainView) ApplyTheme(light bool) {
	mv.app.Settings().SetTheme(NewCalculatorTheme(light))
	mv.toolbar.SetLightMode(light)
}

// Show displays the view
func (mv *MainView) Show() {
	mv.window.Show()
}

func (mv *MainView) GetOperandPanel() *components.OperandPanel { return mv.operands }
func (mv *MainView) GetKeypad() *components.Keypad             { return mv.keypad }
func (mv *MainView) GetStatusBar() *components.StatusBar       { return mv.statusBar }
func (mv *MainView) GetToolbar() *components.Toolbar           { return mv.toolbar }
func (mv *MainView) GetHistoryPanel() *components.HistoryPanel { return mv.historyPanel }
