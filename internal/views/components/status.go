package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays the evaluation result and the memory register size
type StatusBar struct {
	container   *fyne.Container
	resultLabel *widget.Label
	memoryInfo  *widget.Label
	result      string
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.resultLabel = widget.NewLabelWithStyle("Result: ", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	sb.resultLabel.Selectable = true
	sb.memoryInfo = widget.NewLabel("")
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewBorder(nil, nil, nil, sb.memoryInfo, sb.resultLabel)
}

// SetResult updates the result display
func (sb *StatusBar) SetResult(result string) {
	sb.result = result
	sb.resultLabel.SetText("Result: " + result)
}

// GetResult returns the displayed result without its label prefix
func (sb *StatusBar) GetResult() string {
	return sb.result
}

// GetResultText returns the full text of the result label
func (sb *StatusBar) GetResultText() string {
	return sb.resultLabel.Text
}

// SetMemoryInfo shows how many values the memory register holds; an empty
// register hides the indicator
func (sb *StatusBar) SetMemoryInfo(count int) {
	if count == 0 {
		sb.memoryInfo.SetText("")
		return
	}
	sb.memoryInfo.SetText(fmt.Sprintf("M[%d]", count))
}

// GetMemoryInfo returns the memory indicator text
func (sb *StatusBar) GetMemoryInfo() string {
	return sb.memoryInfo.Text
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
