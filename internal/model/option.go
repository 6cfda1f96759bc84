package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyList is returned when a pick is requested from a list with no options.
var ErrEmptyList = errors.New("0 options in the list")

// Option represents a single candidate entry
type Option struct {
	ID      string    // random identifier, never used for ordering
	Text    string    // user supplied text, may be empty
	AddedAt time.Time // when the option was appended
}

// NewOption creates a new option with a fresh ID
func NewOption(text string) Option {
	return Option{
		ID:      uuid.NewString(),
		Text:    text,
		AddedAt: time.Now(),
	}
}

// OptionList is an insertion-ordered sequence of options. Duplicates are allowed.
type OptionList struct {
	options []Option
}

// NewOptionList creates an empty option list
func NewOptionList() *OptionList {
	return &OptionList{
		options: make([]Option, 0),
	}
}

// Append adds an option as the last element
func (l *OptionList) Append(option Option) {
	l.options = append(l.options, option)
}

// RemoveAt deletes the option at index, shifting later options down by one.
// Out of range indices are ignored and false is returned.
func (l *OptionList) RemoveAt(index int) bool {
	if index < 0 || index >= len(l.options) {
		return false
	}
	l.options = append(l.options[:index], l.options[index+1:]...)
	return true
}

// At returns the option at index
func (l *OptionList) At(index int) (Option, bool) {
	if index < 0 || index >= len(l.options) {
		return Option{}, false
	}
	return l.options[index], true
}

// Len returns the number of options
func (l *OptionList) Len() int {
	return len(l.options)
}

// Options returns a copy of all options in insertion order
func (l *OptionList) Options() []Option {
	out := make([]Option, len(l.options))
	copy(out, l.options)
	return out
}

// Texts returns the option texts in insertion order
func (l *OptionList) Texts() []string {
	texts := make([]string, 0, len(l.options))
	for _, option := range l.options {
		texts = append(texts, option.Text)
	}
	return texts
}
