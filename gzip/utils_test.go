package gzip

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsCompressed(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{"empty", []byte(""), false},
		{"one byte", []byte("a"), false},
		{"two bytes", []byte("ab"), false},
		{"gzip magic alone", []byte{0x1F, 0x8B}, false},
		{"gzip magic", []byte{0x1F, 0x8B, 0x08}, true},
		{"zlib default", []byte{0x78, 0x9C, 0x00}, true},
		{"zlib no compression", []byte{0x78, 0x01, 0x00}, true},
		{"zlib best compression", []byte{0x78, 0xDA, 0x00}, true},
		{"zlib low compression", []byte{0x78, 0x5E, 0x00}, true},
		{"zlib bad flag byte", []byte{0x78, 0x00, 0x00}, false},
		{"plain text", []byte("plain text"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsCompressed(tt.data))
			require.Equal(t, tt.want, IsCompressedString(string(tt.data)))
		})
	}
}

func TestIsCompressedOnCompressedOutput(t *testing.T) {
	encoded, err := Compress([]byte("sniff me"))
	require.NoError(t, err)
	require.True(t, IsCompressed(encoded))
}
