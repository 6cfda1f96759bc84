package picker

// Package picker implements the option list controller: it owns the ordered
// option list, applies add/remove requests coming from the presentation layer,
// and draws uniformly random picks. Presentation layers consume it through the
// Picker interface and get notified of mutations via an update callback.
