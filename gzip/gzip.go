// Package gzip compresses and decompresses byte buffers with bounds
// checking on top of an external DEFLATE codec. Compression always
// produces a standard gzip container; decompression accepts gzip- or
// zlib-framed input. Every operation is guarded by a per-instance size
// ceiling so a hostile input cannot force unbounded allocation.
package gzip

import kgzip "github.com/klauspost/compress/gzip"

// Compression levels, re-exported from the underlying codec.
const (
	NoCompression      = kgzip.NoCompression
	BestSpeed          = kgzip.BestSpeed
	BestCompression    = kgzip.BestCompression
	DefaultCompression = kgzip.DefaultCompression
	HuffmanOnly        = kgzip.HuffmanOnly
)

// DefaultMaxBytes is the default size ceiling: operations refuse inputs
// (or projected outputs) larger than this.
const DefaultMaxBytes = 2_000_000_000
