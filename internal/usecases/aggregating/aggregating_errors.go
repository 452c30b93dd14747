package aggregating

import "errors"

var ErrInvalidDate = errors.New("invalid transaction date")
