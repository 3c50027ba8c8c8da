package main

import (
	"fmt"

	"github.com/NewYaroslav/gzip-go/gzip"
)

func main() {
	data := []byte("an example payload that compresses reasonably well well well")

	encoded, err := gzip.Compress(data, gzip.WithLevel(gzip.BestCompression))
	if err != nil {
		panic(err)
	}
	fmt.Printf("compressed %d -> %d bytes, sniffed: %v\n",
		len(data), len(encoded), gzip.IsCompressed(encoded))

	decoded, err := gzip.Decompress(encoded, gzip.WithMaxDecompressedBytes(1<<20))
	if err != nil {
		panic(err)
	}
	fmt.Printf("round trip ok: %v\n", string(decoded) == string(data))
}
