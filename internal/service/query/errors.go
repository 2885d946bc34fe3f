package query

import "errors"

var ErrInvalidSearchDate = errors.New("invalid search date, expected YYYY-MM-DD")
