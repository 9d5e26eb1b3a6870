package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
)

// HistoryPanel is a collapsible list of past evaluations
type HistoryPanel struct {
	container *fyne.Container
	accordion *widget.Accordion
	list      *widget.List
	entries   binding.StringList
}

// NewHistoryPanel creates a collapsed, empty history panel
func NewHistoryPanel() *HistoryPanel {
	h := &HistoryPanel{entries: binding.NewStringList()}
	h.createComponents()
	h.buildLayout()
	return h
}

func (h *HistoryPanel) createComponents() {
	h.list = widget.NewListWithData(
		h.entries,
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(item binding.DataItem, obj fyne.CanvasObject) {
			obj.(*widget.Label).Bind(item.(binding.String))
		},
	)
	h.accordion = widget.NewAccordion(widget.NewAccordionItem("📜 History", h.list))
}

func (h *HistoryPanel) buildLayout() {
	h.container = container.NewStack(h.accordion)
}

// SetEntries replaces the listed entries
func (h *HistoryPanel) SetEntries(entries []string) error {
	return h.entries.Set(entries)
}

// AppendEntry adds one entry to the end of the list
func (h *HistoryPanel) AppendEntry(entry string) error {
	return h.entries.Append(entry)
}

// GetEntries returns the listed entries
func (h *HistoryPanel) GetEntries() []string {
	entries, _ := h.entries.Get()
	return entries
}

// SetExpanded opens or collapses the panel
func (h *HistoryPanel) SetExpanded(open bool) {
	if open {
		h.accordion.Open(0)
	} else {
		h.accordion.Close(0)
	}
}

// IsExpanded reports whether the panel is open
func (h *HistoryPanel) IsExpanded() bool {
	return h.accordion.Items[0].Open
}

// GetContainer returns the panel container
func (h *HistoryPanel) GetContainer() *fyne.Container {
	return h.container
}
