package serialize

import "errors"

// ErrMalformedLine indicates a filtration-format line with fewer than
// two comma-separated fields (at least one vertex plus a value).
var ErrMalformedLine = errors.New("serialize: malformed filtration line")
