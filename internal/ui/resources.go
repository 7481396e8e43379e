package ui

import (
	"fyne.io/fyne/v2"
)

const appIconName = "memos-desktop.svg"

// appIconSVG is a simple note glyph in the product accent color, used for the
// application icon and the tray icon
const appIconSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 64 64">
  <rect x="8" y="8" width="48" height="48" rx="10" fill="#4f46e5"/>
  <rect x="18" y="21" width="28" height="5" rx="2.5" fill="#ffffff"/>
  <rect x="18" y="30" width="28" height="5" rx="2.5" fill="#ffffff"/>
  <rect x="18" y="39" width="17" height="5" rx="2.5" fill="#ffffff"/>
</svg>`

// AppIcon returns the embedded application icon
func AppIcon() fyne.Resource {
	return fyne.NewStaticResource(appIconName, []byte(appIconSVG))
}
