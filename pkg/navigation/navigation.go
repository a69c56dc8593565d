package navigation

import "strings"

// Item represents a navigation link that can be rendered in shared layouts.
// External items open in a new browsing context.
type Item struct {
	Label    string `json:"label"`
	Path     string `json:"path"`
	External bool   `json:"external,omitempty"`
}

var primaryLinks = []Item{
	{Label: "Home", Path: "#home"},
	{Label: "About", Path: "#about"},
	{Label: "Docs", Path: "#docs"},
	{Label: "Contact Us", Path: "#contact"},
}

// PrimaryLinks returns the ordered links shown in both the desktop bar and the
// mobile drawer. The returned slice is a copy.
func PrimaryLinks() []Item {
	links := make([]Item, len(primaryLinks))
	copy(links, primaryLinks)
	return links
}

const (
	menuParam = "menu"
	menuOpen  = "open"
)

// MenuState holds whether the mobile navigation drawer is expanded. The zero
// value is closed.
type MenuState struct {
	open bool
}

// ParseMenuState reads the value of the menu query parameter. Only "open"
// yields an open menu.
func ParseMenuState(value string) MenuState {
	return MenuState{open: strings.EqualFold(strings.TrimSpace(value), menuOpen)}
}

// IsOpen reports whether the drawer is expanded.
func (s MenuState) IsOpen() bool {
	return s.open
}

// Toggle flips the state.
func (s *MenuState) Toggle() {
	s.open = !s.open
}

// Toggled returns the state a toggle would produce without changing s.
func (s MenuState) Toggled() MenuState {
	s.Toggle()
	return s
}

// Label is used in cache keys and log fields.
func (s MenuState) Label() string {
	if s.open {
		return "open"
	}
	return "closed"
}

// Href returns the link that renders the page in this state.
func (s MenuState) Href() string {
	if s.open {
		return "/?" + menuParam + "=" + menuOpen
	}
	return "/"
}

// MobileLinks returns the drawer links, or nil while the drawer is closed.
func (s MenuState) MobileLinks() []Item {
	if !s.open {
		return nil
	}
	return PrimaryLinks()
}

// QueryParam is the name of the query parameter carrying the menu state.
func QueryParam() string {
	return menuParam
}
