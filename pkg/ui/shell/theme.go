// shell package models the dashboard frame: themes and the sidebar.
//
// Rendering is done by clients. This package only decides what to render.
package shell

type ThemeName string

const (
	Light ThemeName = "light"
	Dark  ThemeName = "dark"
)

// Slot is a semantic part of the dashboard which a theme gives CSS classes.
type Slot string

const (
	SlotSidebar    Slot = "sidebar"
	SlotItem       Slot = "item"
	SlotActiveItem Slot = "activeItem"
	SlotInput      Slot = "input"
	SlotButton     Slot = "button"
)

func Slots() []Slot {
	return []Slot{SlotSidebar, SlotItem, SlotActiveItem, SlotInput, SlotButton}
}

var themes = map[ThemeName]map[Slot]string{
	Light: {
		SlotSidebar:    "bg-white border-r border-gray-200 text-gray-800",
		SlotItem:       "text-gray-600 hover:bg-gray-100 hover:text-gray-900",
		SlotActiveItem: "bg-blue-50 text-blue-700 font-semibold",
		SlotInput:      "bg-white border border-gray-300 text-gray-900 focus:ring-blue-500",
		SlotButton:     "bg-blue-600 text-white hover:bg-blue-700",
	},
	Dark: {
		SlotSidebar:    "bg-gray-900 border-r border-gray-700 text-gray-100",
		SlotItem:       "text-gray-300 hover:bg-gray-800 hover:text-white",
		SlotActiveItem: "bg-gray-800 text-blue-300 font-semibold",
		SlotInput:      "bg-gray-800 border border-gray-600 text-gray-100 focus:ring-blue-400",
		SlotButton:     "bg-blue-500 text-white hover:bg-blue-400",
	},
}

// Theme returns the theme named name, and CSS classes for each slot.
//
// Unknown names fall back to Light.
func Theme(name string) (ThemeName, map[Slot]string) {
	n := ThemeName(name)
	classes, ok := themes[n]
	if !ok {
		n = Light
		classes = themes[Light]
	}

	ret := make(map[Slot]string, len(classes))
	for k, v := range classes {
		ret[k] = v
	}
	return n, ret
}
