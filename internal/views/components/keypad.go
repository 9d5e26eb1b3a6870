package components

import (
	"desk-calculator/internal/calc"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Keypad is the row of operator buttons
type Keypad struct {
	container *fyne.Container
	buttons   map[calc.Operator]*widget.Button

	operatorHandler func(calc.Operator)
}

// NewKeypad creates one button per operator in calc.Operators
func NewKeypad() *Keypad {
	k := &Keypad{buttons: make(map[calc.Operator]*widget.Button, len(calc.Operators))}
	k.createComponents()
	k.buildLayout()
	return k
}

func (k *Keypad) createComponents() {
	for _, op := range calc.Operators {
		button := widget.NewButton(op.String(), func() {
			if k.operatorHandler != nil {
				k.operatorHandler(op)
			}
		})
		button.Importance = widget.HighImportance
		k.buttons[op] = button
	}
}

func (k *Keypad) buildLayout() {
	objects := make([]fyne.CanvasObject, 0, len(calc.Operators))
	for _, op := range calc.Operators {
		objects = append(objects, k.buttons[op])
	}
	k.container = container.NewGridWithColumns(len(objects), objects...)
}

// SetOperatorHandler sets the handler for operator button taps
func (k *Keypad) SetOperatorHandler(handler func(calc.Operator)) {
	k.operatorHandler = handler
}

// Button returns the button for op, or nil if there is none
func (k *Keypad) Button(op calc.Operator) *widget.Button {
	return k.buttons[op]
}

// GetContainer returns the keypad container
func (k *Keypad) GetContainer() *fyne.Container {
	return k.container
}
