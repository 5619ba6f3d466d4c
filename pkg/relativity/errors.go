package relativity

import (
	"cosmossdk.io/errors"
)

// Codespace for errors registered by the relativity package.
const Codespace = "relativity"

var (
	// ErrInvalidParameter is returned when a formula receives an input
	// outside its numeric domain (non-positive mass, radius or size).
	ErrInvalidParameter = errors.Register(Codespace, 2, "invalid parameter")

	// ErrDomain is returned when a formula is evaluated at or inside the
	// Schwarzschild radius, where the Schwarzschild relations are undefined.
	ErrDomain = errors.Register(Codespace, 3, "radius at or inside schwarzschild radius")
)
