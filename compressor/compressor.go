package compressor

const (
	MethodHuffman = "HUF"
	MethodRLE     = "RLE"
)

// Encoder is a compressor built over one token sequence.
type Encoder interface {
	Method() string
	Encode() string
	CompressedBitLength() int
}

// OriginalBitLength is the size the sequence is measured against: 8 bits per token.
func OriginalBitLength(tokens []string) int {
	return len(tokens) * 8
}
