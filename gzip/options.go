package gzip

// CompressorOpt configures a Compressor.
type CompressorOpt func(c *Compressor)

// WithLevel sets the compression level, DefaultCompression if unset.
func WithLevel(level int) CompressorOpt {
	return func(c *Compressor) {
		c.level = level
	}
}

// WithMaxBytes sets the input-size ceiling, DefaultMaxBytes if unset.
func WithMaxBytes(maxBytes int) CompressorOpt {
	return func(c *Compressor) {
		c.maxBytes = maxBytes
	}
}

// DecompressorOpt configures a Decompressor.
type DecompressorOpt func(d *Decompressor)

// WithMaxDecompressedBytes sets the ceiling on both the compressed
// input and the decompressed output, DefaultMaxBytes if unset.
func WithMaxDecompressedBytes(maxBytes int) DecompressorOpt {
	return func(d *Decompressor) {
		d.maxBytes = maxBytes
	}
}
