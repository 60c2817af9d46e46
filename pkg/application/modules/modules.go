// Package modules runs the long-lived servers of the process inside one
// errgroup so that the first failure stops all of them.
package modules

import "apartment-journey/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
