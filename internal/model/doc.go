package model

// Package model defines the domain data structures used across the app: the
// option entries a user builds up and the ordered list that holds them. The
// list is owned by a single goroutine and carries no locking.
