package coaching

import "errors"

var ErrUnknownPersona = errors.New("unknown coaching persona")
