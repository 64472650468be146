// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the arena TUI.

All colors use Lip Gloss AdaptiveColor so a single palette serves both dark
and light terminals. The dashboard's theme toggle flips the renderer between
the two variants at runtime.

# Color System (colors.go)

## Accent Colors

  - Purple - Primary accent, active tabs and selections
  - Cyan - Brand color, headers and own messages
  - Emerald - Success log level, online players
  - Amber - Warning log level, players in game
  - Rose - Error log level, unread badges
  - Blue - Info log level

## Log Levels

LevelColor maps a model.LogLevel to its dot color:

	LevelColor(model.LevelError) // Rose

# Theme System (theme.go)

	theme := styles.NewThemeFor("light")
	theme.Toggle()
	fmt.Println(theme.Name()) // "dark"
*/
package styles
