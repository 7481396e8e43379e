package ui

// Package ui contains the Fyne-based desktop shell for the application. It
// wires the launcher, settings window, system tray, and embedded content view
// to the configuration store, and owns every window-lifecycle decision. All
// UI strings are localized via Localization.
