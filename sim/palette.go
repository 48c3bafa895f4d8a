package sim

import "golang.org/x/image/colornames"

// Fallbacks for palette entries missing from a hand-edited tuning file.
var (
	defaultLandingColor  = colornames.Royalblue
	defaultBirdHitColor  = colornames.Palevioletred
	defaultBirdKillColor = colornames.Maroon
	defaultSpringColor   = colornames.Mediumblue
	defaultCoinColor     = colornames.Goldenrod
	defaultShootColor    = colornames.Maroon
)
