package cli

import "github.com/fatih/color"

// Screen palette, matching the legacy ANSI scheme.
var (
	titleColor   = color.New(color.FgHiMagenta, color.Bold)
	menuColor    = color.New(color.FgHiCyan, color.Bold)
	adminColor   = color.New(color.FgHiRed, color.Bold)
	userColor    = color.New(color.FgHiBlue, color.Bold)
	alertColor   = color.New(color.FgHiYellow, color.Bold)
	successColor = color.New(color.FgHiGreen, color.Bold)
	errorColor   = color.New(color.FgHiRed, color.Bold)
	logColor     = color.New(color.FgCyan)
)
