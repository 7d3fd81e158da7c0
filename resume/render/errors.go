package render

import "errors"

// ErrExportFailed is returned for any failure while composing a document. The
// underlying cause is logged, never returned.
var ErrExportFailed = errors.New("export failed")
