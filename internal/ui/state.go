// Package ui models the page's transient state: the dark-mode flag and the
// private-repository popup. A State is owned by the page root for one render
// and travels with the request; nothing here is stored between requests.
package ui

import (
	"net/url"
	"strconv"
)

// Query keys a State is encoded under.
const (
	QueryDark  = "dark"
	QueryPopup = "popup"
)

// State is the root's UI state. The zero value is the initial state:
// light theme, popup hidden.
type State struct {
	Dark  bool
	Popup bool
}

// PopupPhase names the two states of the popup machine.
type PopupPhase int

const (
	Hidden PopupPhase = iota
	Visible
)

func (p PopupPhase) String() string {
	if p == Visible {
		return "visible"
	}
	return "hidden"
}

// Action is a user input the root reacts to.
type Action int

const (
	ToggleTheme Action = iota
	RequestPrivateLink
	Dismiss
)

func (a Action) String() string {
	switch a {
	case ToggleTheme:
		return "toggle-theme"
	case RequestPrivateLink:
		return "request-private-link"
	case Dismiss:
		return "dismiss"
	default:
		return "unknown"
	}
}

// ToggleDarkMode flips the theme.
func (s State) ToggleDarkMode() State {
	s.Dark = !s.Dark
	return s
}

// OpenPopup shows the private-repository popup.
func (s State) OpenPopup() State {
	s.Popup = true
	return s
}

// ClosePopup hides the popup. Closing a hidden popup changes nothing.
func (s State) ClosePopup() State {
	s.Popup = false
	return s
}

// Phase reports the popup machine's state.
func (s State) Phase() PopupPhase {
	if s.Popup {
		return Visible
	}
	return Hidden
}

// Apply returns the state after a.
func (s State) Apply(a Action) State {
	switch a {
	case ToggleTheme:
		return s.ToggleDarkMode()
	case RequestPrivateLink:
		return s.OpenPopup()
	case Dismiss:
		return s.ClosePopup()
	default:
		return s
	}
}

// Query encodes s. Default fields are left out, so the initial state
// encodes to an empty query.
func (s State) Query() url.Values {
	q := url.Values{}
	if s.Dark {
		q.Set(QueryDark, "1")
	}
	if s.Popup {
		q.Set(QueryPopup, "1")
	}
	return q
}

// FromQuery decodes a State. Missing or malformed values fall back to the
// defaults.
func FromQuery(q url.Values) State {
	return State{
		Dark:  flag(q.Get(QueryDark)),
		Popup: flag(q.Get(QueryPopup)),
	}
}

func flag(v string) bool {
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

// All lists every reachable State, initial state first.
func All() []State {
	return []State{
		{},
		{Dark: true},
		{Popup: true},
		{Dark: true, Popup: true},
	}
}
