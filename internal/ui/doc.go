package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It lays out the option list, text entry and action buttons, and forwards
// every user action to the controller handlers together with the picker.
