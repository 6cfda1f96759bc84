package ui

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/randomizer/internal/controller"
	"github.com/ytget/randomizer/internal/logger"
	"github.com/ytget/randomizer/internal/picker"
)

// RootUI represents the main window content. It implements controller.View.
type RootUI struct {
	window fyne.Window
	app    fyne.App
	picker picker.Picker
	log    logger.Logger

	optionList *widget.List
	input      *widget.Entry
	addBtn     *widget.Button
	removeBtn  *widget.Button
	pickBtn    *widget.Button
	selected   int

	// dialogs, replaceable in tests
	showError func(title, message string)
	showInfo  func(title, message string)
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, p picker.Picker, log logger.Logger) *RootUI {
	if log == nil {
		log = logger.Nop()
	}
	ui := &RootUI{
		window:   window,
		app:      app,
		picker:   p,
		log:      log,
		selected: picker.NoSelection,
	}
	ui.showError = ui.showErrorDialog
	ui.showInfo = ui.showInfoDialog

	window.SetTitle(AppTitle)
	window.SetMaster()
	window.SetCloseIntercept(ui.onWindowClose)

	ui.picker.SetUpdateCallback(ui.onOptionsChanged)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.optionList = widget.NewList(
		func() int {
			return ui.picker.Len()
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		ui.updateOptionItem,
	)
	ui.optionList.OnSelected = func(id widget.ListItemID) {
		ui.selected = id
	}
	ui.optionList.OnUnselected = func(widget.ListItemID) {
		ui.selected = picker.NoSelection
	}

	ui.input = widget.NewEntry()
	ui.input.SetPlaceHolder(EntryPlaceholder)
	// Pressing Enter in the entry adds the option
	ui.input.OnSubmitted = func(string) {
		ui.onAddClick()
	}

	ui.addBtn = widget.NewButton(LabelAdd, ui.onAddClick)
	ui.removeBtn = widget.NewButton(LabelRemove, ui.onRemoveClick)
	ui.pickBtn = widget.NewButton(LabelPick, ui.onPickClick)

	buttons := container.NewGridWithColumns(ButtonColumns, ui.addBtn, ui.removeBtn, ui.pickBtn)

	// List takes all remaining space above the entry and button row
	content := container.NewBorder(
		nil,                                  // top
		container.NewVBox(ui.input, buttons), // bottom
		nil,                                  // left
		nil,                                  // right
		ui.optionList,                        // center
	)

	ui.window.SetContent(content)
}

func (ui *RootUI) updateOptionItem(id widget.ListItemID, item fyne.CanvasObject) {
	option, ok := ui.picker.At(id)
	if !ok {
		return
	}
	if label, ok := item.(*widget.Label); ok {
		label.SetText(option.Text)
	}
}

func (ui *RootUI) onAddClick() {
	controller.OnAdd(ui.picker, ui)
}

func (ui *RootUI) onRemoveClick() {
	controller.OnRemove(ui.picker, ui)
}

func (ui *RootUI) onPickClick() {
	controller.OnPick(ui.picker, ui)
}

// onOptionsChanged is called by the picker after every mutation
func (ui *RootUI) onOptionsChanged() {
	ui.log.Debug(component, "options changed", map[string]interface{}{
		"count": ui.picker.Len(),
	})
	if ui.optionList != nil {
		ui.optionList.Refresh()
	}
}

// onWindowClose stops the event loop
func (ui *RootUI) onWindowClose() {
	ui.log.Info(component, "window closed, quitting", nil)
	ui.app.Quit()
}

// InputText returns the entry contents
func (ui *RootUI) InputText() string {
	return ui.input.Text
}

// ClearInput empties the entry
func (ui *RootUI) ClearInput() {
	ui.input.SetText("")
}

// Selected returns the highlighted list row
func (ui *RootUI) Selected() (int, bool) {
	if ui.selected < 0 {
		return picker.NoSelection, false
	}
	return ui.selected, true
}

// ClearSelection removes the list highlight
func (ui *RootUI) ClearSelection() {
	ui.optionList.UnselectAll()
	ui.selected = picker.NoSelection
}

// ShowError shows a modal error dialog
func (ui *RootUI) ShowError(title, message string) {
	ui.showError(title, message)
}

// ShowInfo shows a modal information dialog
func (ui *RootUI) ShowInfo(title, message string) {
	ui.showInfo(title, message)
}

// Refresh redraws the option list
func (ui *RootUI) Refresh() {
	ui.optionList.Refresh()
}

func (ui *RootUI) showErrorDialog(title, message string) {
	ui.log.Debug(component, "showing error", map[string]interface{}{"message": message})
	if title != controller.TitleError {
		dialog.ShowInformation(title, message, ui.window)
		return
	}
	// dialog.ShowError is titled "Error"
	dialog.ShowError(errors.New(message), ui.window)
}

func (ui *RootUI) showInfoDialog(title, message string) {
	dialog.ShowInformation(title, message, ui.window)
}
