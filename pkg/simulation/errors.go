package simulation

import (
	"cosmossdk.io/errors"
)

// Codespace for errors registered by the simulation package.
const Codespace = "simulation"

// ErrConfig is returned when a persisted configuration record is malformed
// or missing required keys. The host surfaces it to the user; the in-memory
// state is never silently replaced with defaults.
var ErrConfig = errors.Register(Codespace, 2, "malformed configuration")
