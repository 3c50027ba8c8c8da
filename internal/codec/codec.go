// Package codec wraps the external DEFLATE library behind small session
// interfaces so the drivers in the gzip package stay independent of the
// concrete codec and tests can substitute a fake.
package codec

import (
	"bytes"
	"io"

	kgzip "github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/pkg/errors"
)

// Status classifies the outcome of a drain call.
type Status int

const (
	// StatusOK means the codec filled the window and may have more output.
	StatusOK Status = iota
	// StatusStreamEnd means the stream terminated cleanly.
	StatusStreamEnd
	// StatusStarved means input ran out before the stream was marked
	// complete but the codec did not treat that as an error.
	StatusStarved
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusStreamEnd:
		return "STREAM_END"
	case StatusStarved:
		return "STARVED"
	default:
		return "UNKNOWN"
	}
}

// DeflateSession is a single-use compression stream. Feed input with
// Write, then Close to finish the stream and flush the trailer.
type DeflateSession interface {
	Write(p []byte) (int, error)
	Close() error
}

// InflateSession is a single-use decompression stream over a fixed
// input. Drain fills the caller's window with decompressed bytes.
type InflateSession interface {
	Drain(dst []byte) (int, Status, error)
	Close() error
}

// OpenDeflate starts a gzip-framed compression session writing to w.
// An invalid level is the only open failure.
func OpenDeflate(w io.Writer, level int) (DeflateSession, error) {
	zw, err := kgzip.NewWriterLevel(w, level)
	if err != nil {
		return nil, err
	}
	return zw, nil
}

// OpenInflate starts a decompression session over data, detecting gzip
// or zlib framing from the first bytes. Header parsing happens here, so
// corrupt or truncated framing fails at open.
func OpenInflate(data []byte) (InflateSession, error) {
	var (
		rc  io.ReadCloser
		err error
	)
	if len(data) >= 2 && data[0] == 0x1F && data[1] == 0x8B {
		rc, err = kgzip.NewReader(bytes.NewReader(data))
	} else {
		rc, err = zlib.NewReader(bytes.NewReader(data))
	}
	if err != nil {
		return nil, err
	}
	return &inflateSession{rc: rc}, nil
}

type inflateSession struct {
	rc io.ReadCloser
}

func (s *inflateSession) Drain(dst []byte) (int, Status, error) {
	n := 0
	for n < len(dst) {
		m, err := s.rc.Read(dst[n:])
		n += m
		switch {
		case err == io.EOF:
			return n, StatusStreamEnd, nil
		case err == io.ErrUnexpectedEOF:
			return n, StatusStarved, errors.Wrap(err, "truncated stream")
		case err != nil:
			return n, StatusStarved, err
		}
	}
	return n, StatusOK, nil
}

func (s *inflateSession) Close() error {
	return s.rc.Close()
}
