package tui

// Package tui is a terminal front end for the randomizer built on bubbletea.
// It renders the same list, entry and three actions as the desktop window and
// routes every action through the controller handlers.
