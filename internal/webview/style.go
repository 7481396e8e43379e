package webview

// ScrollbarCSS slims the content scrollbars down to the compact look the web
// UI is designed around
const ScrollbarCSS = `::-webkit-scrollbar { width: 8px; height: 8px; }
::-webkit-scrollbar-thumb { background: rgba(0,0,0,0.2); border-radius: 4px; }
::-webkit-scrollbar-thumb:hover { background: rgba(0,0,0,0.3); }
::-webkit-scrollbar-track { background: transparent; }`

// InjectionScript wraps a stylesheet in a script that appends it to the
// document head. The stylesheet is embedded in a template literal and must
// not contain backticks.
func InjectionScript(css string) string {
	return "(function() {\n" +
		"  const style = document.createElement('style');\n" +
		"  style.textContent = `" + css + "`;\n" +
		"  document.head.appendChild(style);\n" +
		"})();"
}
