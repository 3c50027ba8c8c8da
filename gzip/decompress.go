package gzip

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/NewYaroslav/gzip-go/internal/buffer"
	"github.com/NewYaroslav/gzip-go/internal/codec"
	"github.com/NewYaroslav/gzip-go/util"
)

// openInflate is swapped in tests to fake the codec.
var openInflate = codec.OpenInflate

// Decompressor inflates gzip- or zlib-framed byte buffers. The size
// ceiling bounds both the compressed input and the decompressed output;
// a Decompressor carries no per-call state, so concurrent use is safe.
type Decompressor struct {
	maxBytes int
}

// NewDecompressor returns a Decompressor with DefaultMaxBytes unless
// overridden by opts.
func NewDecompressor(opts ...DecompressorOpt) *Decompressor {
	d := &Decompressor{maxBytes: DefaultMaxBytes}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decompress inflates data, auto-detecting gzip or zlib framing. It
// fails with ErrSizeLimitExceeded when the input or the growing output
// exceeds the ceiling, and with ErrCodecStream on corrupt or truncated
// input. The first ceiling check assumes one 2x growth step; the real
// bound on decompression bombs is the re-check inside the drain loop.
func (d *Decompressor) Decompress(data []byte) ([]byte, error) {
	size := len(data)
	if size > d.maxBytes || 2*size > d.maxBytes {
		return nil, errors.Wrapf(ErrSizeLimitExceeded,
			"input size %d may decompress past limit %d", size, d.maxBytes)
	}

	// Guard runs first so a rejected input never opens a session.
	sess, err := openInflate(data)
	if err != nil {
		return nil, errors.Wrap(ErrCodecStream, err.Error())
	}

	step := 2 * size
	out := buffer.New(step)
	for {
		if out.Len()+step > d.maxBytes {
			sess.Close()
			return nil, errors.Wrapf(ErrSizeLimitExceeded,
				"decompressed output exceeds limit %d", d.maxBytes)
		}
		n, st, err := sess.Drain(out.Window(step))
		out.Advance(n)
		if err != nil {
			sess.Close()
			util.Logger().Error("gzip decompress error", zap.Error(err))
			return nil, errors.Wrap(ErrCodecStream, err.Error())
		}
		if st == codec.StatusStreamEnd || st == codec.StatusStarved {
			break
		}
		// StatusOK with a full window: more output may remain.
		if n < step {
			break
		}
	}
	if err = sess.Close(); err != nil {
		return nil, errors.Wrap(ErrCodecStream, err.Error())
	}
	return out.Bytes(), nil
}

// DecompressString is Decompress for string data.
func (d *Decompressor) DecompressString(data string) (string, error) {
	out, err := d.Decompress([]byte(data))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Decompress is a one-shot helper constructing a throwaway Decompressor.
func Decompress(data []byte, opts ...DecompressorOpt) ([]byte, error) {
	return NewDecompressor(opts...).Decompress(data)
}

// DecompressString is a one-shot helper for string data.
func DecompressString(data string, opts ...DecompressorOpt) (string, error) {
	return NewDecompressor(opts...).DecompressString(data)
}
