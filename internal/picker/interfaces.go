package picker

import (
	"github.com/ytget/randomizer/internal/model"
)

// NoSelection is the index reported when nothing is selected in the list.
const NoSelection = -1

// Picker defines the interface for the option list controller.
type Picker interface {
	SetUpdateCallback(func())
	Add(text string) model.Option
	Remove(index int) bool
	PickRandom() (string, error)
	Len() int
	At(index int) (model.Option, bool)
	Options() []model.Option
}

// Source draws a non-negative integer uniformly from [0, n). n is always > 0.
type Source interface {
	IntN(n int) int
}
