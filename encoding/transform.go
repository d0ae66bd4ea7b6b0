package encoding

// The block transform turns a hypercube of raw float bit patterns into words
// with long runs of leading zeros:
//
//  1. A one-bit circular left rotation moves the IEEE sign bit to the
//     least-significant position, so the exponent occupies the high bits and
//     adjacent values in smooth regions share high-order bits.
//  2. A separable per-axis difference step decorrelates neighbors along each
//     axis with modular subtraction.
//  3. A sign-magnitude complement flips the low W-1 bits of every word whose
//     high bit is set, collecting residual signs into a single bit plane.
//
// The axis order is part of the stream format (format.AxisOrderDefault):
// D=1 applies axis 1; D=2 applies axis 1 then axis 2; D=3 applies axis 2,
// then axis 1, then axis 3, where axis 1 is the stride-1 axis of the
// first-major layout, axis 2 has stride S and axis 3 has stride S^2.
// The inverse runs the reverse order.

// RotateLeft1 rotates u left by one bit.
func RotateLeft1[W Word](u W) W {
	n := BitsOf[W]()
	return u<<1 | u>>(n-1)
}

// RotateRight1 rotates u right by one bit. Inverse of RotateLeft1.
func RotateRight1[W Word](u W) W {
	n := BitsOf[W]()
	return u>>1 | u<<(n-1)
}

// ComplementNegative flips the low W-1 bits of u if its high bit is set.
// The high bit itself is preserved, which makes the operation an involution.
func ComplementNegative[W Word](u W) W {
	n := BitsOf[W]()
	if u>>(n-1) != 0 {
		u ^= ^W(0) >> 1
	}

	return u
}

// forwardDiff replaces line[i*stride] by line[i*stride]-line[(i-1)*stride]
// for i in [1,n), in descending order so each difference reads original values.
func forwardDiff[W Word](line []W, n, stride int) {
	for i := n - 1; i > 0; i-- {
		line[i*stride] -= line[(i-1)*stride]
	}
}

// inverseDiff is the matching prefix sum, ascending.
func inverseDiff[W Word](line []W, n, stride int) {
	for i := 1; i < n; i++ {
		line[i*stride] += line[(i-1)*stride]
	}
}

// ForwardBlockTransform applies the reversible block transform in place to a
// hypercube of side^dims words laid out in first-major order.
func ForwardBlockTransform[W Word](x []W, dims, side int) {
	for i := range x {
		x[i] = RotateLeft1(x[i])
	}

	n := side
	switch dims {
	case 1:
		forwardDiff(x, n, 1)
	case 2:
		for i := 0; i < n; i++ {
			forwardDiff(x[i*n:], n, 1)
		}
		for i := 0; i < n; i++ {
			forwardDiff(x[i:], n, n)
		}
	case 3:
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				forwardDiff(x[i*n*n+j:], n, n)
			}
		}
		for i := 0; i < n*n; i++ {
			forwardDiff(x[i*n:], n, 1)
		}
		for i := 0; i < n*n; i++ {
			forwardDiff(x[i:], n, n*n)
		}
	}

	for i := range x {
		x[i] = ComplementNegative(x[i])
	}
}

// InverseBlockTransform undoes ForwardBlockTransform in place.
func InverseBlockTransform[W Word](x []W, dims, side int) {
	for i := range x {
		x[i] = ComplementNegative(x[i])
	}

	n := side
	switch dims {
	case 1:
		inverseDiff(x, n, 1)
	case 2:
		for i := 0; i < n; i++ {
			inverseDiff(x[i:], n, n)
		}
		for i := 0; i < n; i++ {
			inverseDiff(x[i*n:], n, 1)
		}
	case 3:
		for i := 0; i < n*n; i++ {
			inverseDiff(x[i:], n, n*n)
		}
		for i := 0; i < n*n; i++ {
			inverseDiff(x[i*n:], n, 1)
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				inverseDiff(x[i*n*n+j:], n, n)
			}
		}
	}

	for i := range x {
		x[i] = RotateRight1(x[i])
	}
}
