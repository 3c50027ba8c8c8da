package gzip

// IsCompressed reports whether data starts with a zlib or gzip magic
// sequence. It is a pure prefix check and never touches the codec;
// buffers of two bytes or fewer are never considered compressed.
func IsCompressed(data []byte) bool {
	if len(data) <= 2 {
		return false
	}
	// zlib: 0x78 then one of the standard flag bytes
	if data[0] == 0x78 &&
		(data[1] == 0x9C || data[1] == 0x01 || data[1] == 0xDA || data[1] == 0x5E) {
		return true
	}
	// gzip
	return data[0] == 0x1F && data[1] == 0x8B
}

// IsCompressedString is IsCompressed for string data.
func IsCompressedString(data string) bool {
	return IsCompressed([]byte(data))
}
