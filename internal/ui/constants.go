package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Window
const (
	AppID    = "com.ytget.randomizer"
	AppTitle = "Randomizer"
)

// Button labels
const (
	LabelAdd    = "Add"
	LabelRemove = "Remove"
	LabelPick   = "Pick"
)

// Layout
const (
	ButtonColumns = 3
)

// Placeholder shown in the empty entry
const (
	EntryPlaceholder = "New option"
)

const component = "RootUI"
