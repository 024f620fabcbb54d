package ponyo

import _ "embed"

// prelude holds procedures that are defined in Scheme on top of the
// primitives. New loads it into every global environment unless
// Config.NoPrelude is set.
//
//go:embed prelude.scm
var prelude string
