package location

import "errors"

var (
	ErrCacheRead   = errors.New("location cache: failed to read entry")
	ErrCacheWrite  = errors.New("location cache: failed to write entry")
	ErrCacheDecode = errors.New("location cache: failed to decode entry")
)
