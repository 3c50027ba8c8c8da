package gzip

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/NewYaroslav/gzip-go/internal/buffer"
	"github.com/NewYaroslav/gzip-go/internal/codec"
	"github.com/NewYaroslav/gzip-go/util"
)

// Compressor compresses byte buffers into gzip containers. The level
// and size ceiling are fixed at construction; a Compressor carries no
// per-call state, so concurrent use is safe.
type Compressor struct {
	level    int
	maxBytes int
}

// NewCompressor returns a Compressor with DefaultCompression and
// DefaultMaxBytes unless overridden by opts.
func NewCompressor(opts ...CompressorOpt) *Compressor {
	c := &Compressor{
		level:    DefaultCompression,
		maxBytes: DefaultMaxBytes,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compress gzip-frames data and returns the compressed bytes. It fails
// with ErrSizeLimitExceeded when the input is larger than the ceiling
// and with ErrCodecInit when the level is invalid.
func (c *Compressor) Compress(data []byte) ([]byte, error) {
	size := len(data)
	if size > c.maxBytes {
		return nil, errors.Wrapf(ErrSizeLimitExceeded,
			"input size %d exceeds limit %d", size, c.maxBytes)
	}

	// Output storage grows by half the input size plus a 1 KB floor,
	// the same increment for every top-up.
	out := buffer.New(size/2 + 1024)
	sess, err := codec.OpenDeflate(out, c.level)
	if err != nil {
		return nil, errors.Wrap(ErrCodecInit, err.Error())
	}
	if _, err = sess.Write(data); err != nil {
		sess.Close()
		util.Logger().Error("gzip compress error", zap.Error(err))
		return nil, errors.Wrap(ErrCodecStream, err.Error())
	}
	// Close finishes the stream and flushes the gzip trailer.
	if err = sess.Close(); err != nil {
		util.Logger().Error("gzip compress error", zap.Error(err))
		return nil, errors.Wrap(ErrCodecStream, err.Error())
	}
	return out.Bytes(), nil
}

// CompressString is Compress for string data.
func (c *Compressor) CompressString(data string) (string, error) {
	out, err := c.Compress([]byte(data))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Compress is a one-shot helper constructing a throwaway Compressor.
func Compress(data []byte, opts ...CompressorOpt) ([]byte, error) {
	return NewCompressor(opts...).Compress(data)
}

// CompressString is a one-shot helper for string data.
func CompressString(data string, opts ...CompressorOpt) (string, error) {
	return NewCompressor(opts...).CompressString(data)
}
