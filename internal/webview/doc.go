package webview

// Package webview defines the embedded content window seam: the View
// interface the shell drives, per-OS implementations behind it (an embedded
// Edge WebView2 window on Windows, a system-browser handoff window
// elsewhere), and the cosmetic stylesheet injected into loaded documents.
