package model

// Icons used outside the class table.
const (
	IconWindow  = "\U0001FA9F" // 🪟 shown when nothing has focus
	IconDefault = "\uf2d0"     // fa-window-maximize, fallback for unknown classes
)

// DefaultIconKey is the IconTable key consulted when a class has no entry.
const DefaultIconKey = "default"

// IconTable maps a window class to a Nerd Font glyph.
// Lookups are exact and case-sensitive. Treat it as read-only once built.
type IconTable map[string]string

// DefaultIcons returns the built-in class table.
func DefaultIcons() IconTable {
	return IconTable{
		// Browsers
		"firefox":       "\uf269",
		"Brave-browser": "\uf27f",
		"Google-chrome": "\uf268",

		// Editors and IDEs
		"code":               "\ue70c",
		"Code":               "\ue70c",
		"Cursor":             "\uf285", // Mouse pointer
		"Windsurf":           "\ue70c",
		"jetbrains-rubymine": "\ue791",

		// File managers
		"org.gnome.Nautilus": "\uf07b", // Folder
		"Nautilus":           "\uf07b",

		// Terminals
		"wezterm":                "\uf120",
		"org.wezfurlong.wezterm": "\uf120",
		"Alacritty":              "\uf120",

		// Media
		"Spotify": "\uf1bc",
		"mpv":     "\uf144", // Play button

		DefaultIconKey: IconDefault,
	}
}

// Resolve returns the glyph for class, or the "default" glyph when the class
// is not in the table.
func (t IconTable) Resolve(class string) string {
	if icon, ok := t[class]; ok {
		return icon
	}
	if icon, ok := t[DefaultIconKey]; ok {
		return icon
	}
	return IconDefault
}
