package confirmation

import "errors"

// ErrUnknownToken is returned when the presented token does not match any
// issued confirmation token. The boundary maps it to a client error.
var ErrUnknownToken = errors.New("unknown subscription token")
