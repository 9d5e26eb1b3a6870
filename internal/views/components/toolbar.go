package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds the memory register buttons and the theme toggle
type Toolbar struct {
	container    *fyne.Container
	storeButton  *widget.Button
	recallButton *widget.Button
	clearButton  *widget.Button
	themeCheck   *widget.Check

	// Event handlers
	storeHandler  func()
	recallHandler func()
	clearHandler  func()
	themeHandler  func(bool)
}

// NewToolbar creates a new toolbar component
func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	toolbar.setupEventHandlers()
	return toolbar
}

func (t *Toolbar) createComponents() {
	t.storeButton = widget.NewButton("M+", nil)
	t.recallButton = widget.NewButton("MR", nil)
	t.clearButton = widget.NewButton("MC", nil)
	t.themeCheck = widget.NewCheck("Light mode", nil)
}

func (t *Toolbar) buildLayout() {
	t.container = container.NewHBox(
		t.storeButton,
		t.recallButton,
		t.clearButton,
		widget.NewSeparator(),
		t.themeCheck,
	)
}

func (t *Toolbar) setupEventHandlers() {
	t.storeButton.OnTapped = func() {
		if t.storeHandler != nil {
			t.storeHandler()
		}
	}

	t.recallButton.OnTapped = func() {
		if t.recallHandler != nil {
			t.recallHandler()
		}
	}

	t.clearButton.OnTapped = func() {
		if t.clearHandler != nil {
			t.clearHandler()
		}
	}

	t.themeCheck.OnChanged = func(checked bool) {
		if t.themeHandler != nil {
			t.themeHandler(checked)
		}
	}
}

// SetStoreHandler sets the M+ handler
func (t *Toolbar) SetStoreHandler(handler func()) {
	t.storeHandler = handler
}

// SetRecallHandler sets the MR handler
func (t *Toolbar) SetRecallHandler(handler func()) {
	t.recallHandler = handler
}

// SetClearHandler sets the MC handler
func (t *Toolbar) SetClearHandler(handler func()) {
	t.clearHandler = handler
}

// SetThemeHandler sets the handler for the light mode toggle
func (t *Toolbar) SetThemeHandler(handler func(bool)) {
	t.themeHandler = handler
}

// SetLightMode updates the toggle without firing the theme handler
func (t *Toolbar) SetLightMode(light bool) {
	handler := t.themeCheck.OnChanged
	t.themeCheck.OnChanged = nil
	t.themeCheck.SetChecked(light)
	t.themeCheck.OnChanged = handler
}

func (t *Toolbar) StoreButton() *widget.Button  { return t.storeButton }
func (t *Toolbar) RecallButton() *widget.Button { return t.recallButton }
func (t *Toolbar) ClearButton() *widget.Button  { return t.clearButton }
func (t *Toolbar) ThemeCheck() *widget.Check    { return t.themeCheck }

// GetContainer returns the toolbar container
func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}
