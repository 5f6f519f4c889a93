package gallery

import "errors"

// ErrListImages indicates the image directory could not be listed.
// The underlying cause stays in the error chain.
var ErrListImages = errors.New("failed to list images")
