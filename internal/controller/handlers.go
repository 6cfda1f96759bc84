package controller

import (
	"errors"

	"github.com/ytget/randomizer/internal/model"
	"github.com/ytget/randomizer/internal/picker"
)

// Dialog titles and messages shown by the handlers
const (
	TitleError = "Error"
	TitlePick  = "Pick"

	MessageEmptyList = "0 options in the list"
)

// View is the presentation surface the handlers drive. Fyne and terminal
// front ends both implement it.
type View interface {
	InputText() string
	ClearInput()
	// Selected returns the highlighted list index, if any
	Selected() (int, bool)
	ClearSelection()
	ShowError(title, message string)
	ShowInfo(title, message string)
	Refresh()
}

// OnAdd appends the current input text and clears the input
func OnAdd(p picker.Picker, v View) {
	p.Add(v.InputText())
	v.ClearInput()
	v.Refresh()
}

// OnRemove deletes the selected option. No selection is a no-op.
func OnRemove(p picker.Picker, v View) {
	index, ok := v.Selected()
	if !ok {
		return
	}
	if p.Remove(index) {
		v.ClearSelection()
		v.Refresh()
	}
}

// OnPick shows a uniformly random option, or an error when the list is empty
func OnPick(p picker.Picker, v View) {
	text, err := p.PickRandom()
	if errors.Is(err, model.ErrEmptyList) {
		v.ShowError(TitleError, MessageEmptyList)
		return
	}
	if err != nil {
		v.ShowError(TitleError, err.Error())
		return
	}
	v.ShowInfo(TitlePick, text)
}
