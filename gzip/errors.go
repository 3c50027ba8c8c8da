package gzip

import "github.com/pkg/errors"

var (
	// ErrSizeLimitExceeded reports an input, or a projected output,
	// larger than the configured ceiling.
	ErrSizeLimitExceeded = errors.New("size may use more memory than intended")
	// ErrCodecInit reports that the codec rejected session setup, e.g.
	// an invalid compression level.
	ErrCodecInit = errors.New("codec init failed")
	// ErrCodecStream reports a framing or data error from the codec
	// while processing; the wrapped cause carries its diagnostic.
	ErrCodecStream = errors.New("codec stream error")
)
