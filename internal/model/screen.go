package model

// Screen is one of the four dashboard views.
type Screen string

const (
	ScreenLanding   Screen = "landing"
	ScreenExplore   Screen = "explore"
	ScreenRecommend Screen = "recommend"
	ScreenCompare   Screen = "compare"
)

// Screens lists every screen in navigation order.
var Screens = []Screen{ScreenLanding, ScreenExplore, ScreenRecommend, ScreenCompare}

// IsValid reports whether s names one of the four screens.
func (s Screen) IsValid() bool {
	switch s {
	case ScreenLanding, ScreenExplore, ScreenRecommend, ScreenCompare:
		return true
	}
	return false
}

// Title is the label shown in navigation.
func (s Screen) Title() string {
	switch s {
	case ScreenLanding:
		return "Home"
	case ScreenExplore:
		return "Explore"
	case ScreenRecommend:
		return "Recommend"
	case ScreenCompare:
		return "Compare"
	}
	return string(s)
}
