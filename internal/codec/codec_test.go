package codec

import (
	"bytes"
	"testing"

	kgzip "github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/stretchr/testify/require"
)

func gzipped(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := kgzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestOpenDeflateInvalidLevel(t *testing.T) {
	_, err := OpenDeflate(&bytes.Buffer{}, 42)
	require.Error(t, err)
}

func TestOpenDeflateWritesGzipFrame(t *testing.T) {
	var buf bytes.Buffer
	sess, err := OpenDeflate(&buf, kgzip.DefaultCompression)
	require.NoError(t, err)
	_, err = sess.Write([]byte("payload"))
	require.NoError(t, err)
	require.NoError(t, sess.Close())

	out := buf.Bytes()
	require.Greater(t, len(out), 2)
	require.Equal(t, byte(0x1F), out[0])
	require.Equal(t, byte(0x8B), out[1])
}

func TestOpenInflateDetectsZlib(t *testing.T) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	_, err := zw.Write([]byte("zlib payload"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	sess, err := OpenInflate(buf.Bytes())
	require.NoError(t, err)
	defer sess.Close()

	dst := make([]byte, 64)
	n, st, err := sess.Drain(dst)
	require.NoError(t, err)
	require.Equal(t, StatusStreamEnd, st)
	require.Equal(t, []byte("zlib payload"), dst[:n])
}

func TestOpenInflateRejectsGarbage(t *testing.T) {
	_, err := OpenInflate([]byte("not a stream"))
	require.Error(t, err)

	_, err = OpenInflate(nil)
	require.Error(t, err)
}

func TestDrainWindowing(t *testing.T) {
	input := bytes.Repeat([]byte("0123456789"), 100)
	sess, err := OpenInflate(gzipped(t, input))
	require.NoError(t, err)
	defer sess.Close()

	var got []byte
	window := make([]byte, 256)
	for {
		n, st, err := sess.Drain(window)
		require.NoError(t, err)
		got = append(got, window[:n]...)
		if st == StatusStreamEnd {
			break
		}
		require.Equal(t, StatusOK, st)
		require.Equal(t, len(window), n)
	}
	require.Equal(t, input, got)
}

func TestDrainTruncatedStream(t *testing.T) {
	encoded := gzipped(t, bytes.Repeat([]byte("truncate"), 100))
	sess, err := OpenInflate(encoded[:len(encoded)-12])
	require.NoError(t, err)
	defer sess.Close()

	window := make([]byte, 4096)
	_, _, err = sess.Drain(window)
	require.Error(t, err)
}

func TestStatusString(t *testing.T) {
	require.Equal(t, "OK", StatusOK.String())
	require.Equal(t, "STREAM_END", StatusStreamEnd.String())
	require.Equal(t, "STARVED", StatusStarved.String())
	require.Equal(t, "UNKNOWN", Status(9).String())
}
