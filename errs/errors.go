// Package errs defines the sentinel errors shared across gridzip packages.
//
// Callers should match these with errors.Is; call sites add context by
// wrapping with fmt.Errorf("%w: ...", errs.ErrXxx).
package errs

import "errors"

var (
	// ErrBadExtent indicates a zero-sized axis or an unsupported dimensionality.
	ErrBadExtent = errors.New("bad array extent")

	// ErrShortInput indicates the decoder would read past the supplied byte count.
	ErrShortInput = errors.New("compressed input too short")

	// ErrBadConfig indicates conflicting or missing top-level configuration.
	ErrBadConfig = errors.New("bad configuration")

	// ErrBufferTooSmall indicates the caller-supplied output buffer is smaller
	// than the compressed size bound for the extent.
	ErrBufferTooSmall = errors.New("output buffer too small")

	// ErrBadMagic indicates the stream does not start with the gridzip magic.
	ErrBadMagic = errors.New("bad stream magic")

	// ErrBadHeader indicates a stream header field disagrees with the
	// decoder's expectations.
	ErrBadHeader = errors.New("bad stream header")

	// ErrChecksumMismatch indicates a chunk container checksum did not verify.
	ErrChecksumMismatch = errors.New("chunk checksum mismatch")

	// ErrChunkSize indicates a raw input chunk does not match the declared extent.
	ErrChunkSize = errors.New("chunk size does not match extent")
)
