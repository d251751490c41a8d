package rivercross

import _ "embed"

// Version is the release of the rivercross module.
//
//go:embed VERSION
var Version string
