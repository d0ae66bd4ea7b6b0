package encoding

import "github.com/arloliu/gridzip/errs"

// Zero-column elimination packs one transposed column group into a W-bit
// header word followed by the group's nonzero words.
//
// Conformance note: header bit i, counting the least-significant bit as bit
// 0, is set iff word i of the group is nonzero. The payload words follow in
// ascending i. Both sides of the codec depend on this ordering; it is fixed
// by the stream format.

// EncodeZeroColumns appends the header and nonzero words of one column group
// to dst and returns the extended slice. The group must hold exactly W words.
func EncodeZeroColumns[W Word](group []W, dst []W) []W {
	n := BitsOf[W]()

	var header W
	for i, w := range group[:n] {
		if w != 0 {
			header |= 1 << i
		}
	}

	dst = append(dst, header)
	for _, w := range group[:n] {
		if w != 0 {
			dst = append(dst, w)
		}
	}

	return dst
}

// DecodeZeroColumns reads one packed column group from src and scatters its
// words into group, zero-filling eliminated positions. It returns the number
// of words consumed, or ErrShortInput if src ends inside the group.
func DecodeZeroColumns[W Word](src, group []W) (int, error) {
	n := BitsOf[W]()

	if len(src) < 1 {
		return 0, errs.ErrShortInput
	}
	header := src[0]

	pos := 1
	for i := 0; i < n; i++ {
		if header>>i&1 != 0 {
			if pos >= len(src) {
				return 0, errs.ErrShortInput
			}
			group[i] = src[pos]
			pos++
		} else {
			group[i] = 0
		}
	}

	return pos, nil
}
