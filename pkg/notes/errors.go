package notes

import "errors"

// ErrMissingField signals that one of the request fields is empty. Callers
// receive it wrapped with the offending field name.
var ErrMissingField = errors.New("notes: field is required")
