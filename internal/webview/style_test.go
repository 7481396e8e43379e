package webview

import (
	"strings"
	"testing"
)

func TestInjectionScript(t *testing.T) {
	script := InjectionScript(ScrollbarCSS)

	if !strings.HasPrefix(script, "(function()") {
		t.Errorf("Expected script to be wrapped in an IIFE, got: %s", script)
	}
	if !strings.HasSuffix(script, "})();") {
		t.Errorf("Expected script to invoke itself, got: %s", script)
	}
	if !strings.Contains(script, ScrollbarCSS) {
		t.Error("Expected script to embed the stylesheet verbatim")
	}
	if !strings.Contains(script, "document.head.appendChild(style)") {
		t.Error("Expected script to append the style element to the document head")
	}
}

func TestScrollbarCSS(t *testing.T) {
	// The stylesheet is embedded in a template literal, so it must stay
	// backtick-free
	if strings.Contains(ScrollbarCSS, "`") {
		t.Error("Stylesheet must not contain backticks")
	}

	for _, selector := range []string{
		"::-webkit-scrollbar",
		"::-webkit-scrollbar-thumb",
		"::-webkit-scrollbar-track",
	} {
		if !strings.Contains(ScrollbarCSS, selector) {
			t.Errorf("Expected stylesheet to style %s", selector)
		}
	}
}
