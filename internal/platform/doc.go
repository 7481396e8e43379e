package platform

// Package platform contains OS/platform integration glue: resolution of the
// per-user configuration, browser-profile and log directories, filesystem
// helpers, and opening URLs with the system browser.
