package app

import "errors"

var errNoNearby = errors.New("no location nearby")
