package model

// Package model defines the domain data structures shared across the app: the
// persisted configuration record, window geometry with its clamping rules, and
// the startup screen decision. Values are plain records designed for direct
// JSON persistence and pure, testable transitions.
