package geo

import "errors"

var ErrInvalidCoordinate = errors.New("invalid coordinate")
