package format

type (
	Width           uint8
	Profile         uint8
	AxisOrder       uint8
	CompressionType uint8
)

const (
	Width32 Width = 32 // Width32 represents 32-bit (float32) values.
	Width64 Width = 64 // Width64 represents 64-bit (float64) values.

	ProfileFast   Profile = 0x1 // ProfileFast is tuned for throughput.
	ProfileStrong Profile = 0x2 // ProfileStrong is tuned for compression ratio.

	// AxisOrderDefault identifies the block transform axis order used by this
	// implementation: D=1 applies axis 1; D=2 applies axis 1 then axis 2;
	// D=3 applies axis 2, then axis 1, then axis 3. Axis 1 is the
	// fastest-varying (stride 1) axis of the first-major layout.
	AxisOrderDefault AxisOrder = 0x1

	CompressionNone CompressionType = 0x1 // CompressionNone represents no container compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 block compression.
)

// Valid reports whether the width is one of the supported value widths.
func (w Width) Valid() bool {
	return w == Width32 || w == Width64
}

// Bytes returns the storage size of one value in bytes.
func (w Width) Bytes() int {
	return int(w) / 8
}

func (w Width) String() string {
	switch w {
	case Width32:
		return "Width32"
	case Width64:
		return "Width64"
	default:
		return "Unknown"
	}
}

func (p Profile) Valid() bool {
	return p == ProfileFast || p == ProfileStrong
}

func (p Profile) String() string {
	switch p {
	case ProfileFast:
		return "Fast"
	case ProfileStrong:
		return "Strong"
	default:
		return "Unknown"
	}
}

func (a AxisOrder) String() string {
	switch a {
	case AxisOrderDefault:
		return "Default"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
