package tui

import "github.com/rgehrsitz/finsim/internal/tui/tuistyles"

// Re-export styles from tuistyles to avoid import cycles
var (
	ColorPrimary = tuistyles.ColorPrimary
	ColorMuted   = tuistyles.ColorMuted

	AppStyle         = tuistyles.AppStyle
	TitleStyle       = tuistyles.TitleStyle
	SubtitleStyle    = tuistyles.SubtitleStyle
	StatusBarStyle   = tuistyles.StatusBarStyle
	BorderStyle      = tuistyles.BorderStyle
	TabStyle         = tuistyles.TabStyle
	ActiveTabStyle   = tuistyles.ActiveTabStyle
	TableHeaderStyle = tuistyles.TableHeaderStyle
	ErrorStyle       = tuistyles.ErrorStyle
)

var (
	RiskBadge   = tuistyles.RiskBadge
	SignedStyle = tuistyles.SignedStyle
)
