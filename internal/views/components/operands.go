package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// OperandPanel holds the two numeric input fields
type OperandPanel struct {
	container   *fyne.Container
	firstEntry  *widget.Entry
	secondEntry *widget.Entry

	changeHandler func(num1, num2 string)
}

// NewOperandPanel creates a new operand input panel
func NewOperandPanel() *OperandPanel {
	panel := &OperandPanel{}
	panel.createComponents()
	panel.buildLayout()
	panel.setupEventHandlers()
	return panel
}

func (p *OperandPanel) createComponents() {
	p.firstEntry = widget.NewEntry()
	p.firstEntry.SetPlaceHolder("0")
	p.secondEntry = widget.NewEntry()
	p.secondEntry.SetPlaceHolder("0")
}

func (p *OperandPanel) buildLayout() {
	p.container = container.New(
		layout.NewFormLayout(),
		widget.NewLabel("Num 1:"), p.firstEntry,
		widget.NewLabel("Num 2:"), p.secondEntry,
	)
}

func (p *OperandPanel) setupEventHandlers() {
	notify := func(string) {
		if p.changeHandler != nil {
			p.changeHandler(p.firstEntry.Text, p.secondEntry.Text)
		}
	}
	p.firstEntry.OnChanged = notify
	p.secondEntry.OnChanged = notify
}

// SetChangeHandler sets the handler called with both fields whenever either changes
func (p *OperandPanel) SetChangeHandler(handler func(num1, num2 string)) {
	p.changeHandler = handler
}

// GetOperands returns the raw text of both fields
func (p *OperandPanel) GetOperands() (string, string) {
	return p.firstEntry.Text, p.secondEntry.Text
}

func (p *OperandPanel) FirstEntry() *widget.Entry  { return p.firstEntry }
func (p *OperandPanel) SecondEntry() *widget.Entry { return p.secondEntry }

// GetContainer returns the panel container
func (p *OperandPanel) GetContainer() *fyne.Container {
	return p.container
}
