package store

import "errors"

// ErrCacheClosed is returned by BlobCache methods after Close.
var ErrCacheClosed = errors.New("blob cache is closed")
