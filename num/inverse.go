package num

// ModInverse returns the modular inverse of x modulo n, using the extended Euclidean algorithm.
// Output is always in [0, n).
// The second return value is false if x and n are not coprime, in which case no inverse exists.
//
// x may be any int64, including negative values.
// Panics if n < 2.
func ModInverse(x, n int64) (int64, bool) {
	if n < 2 {
		panic("modulus must be at least 2")
	}

	s := x % n
	if s < 0 {
		s += n
	}

	// s = xs * x + ns * n, b = xb * x + nb * n.
	// ns and nb are never needed modulo n.
	xs, b, xb := int64(1), n, int64(0)
	for s > 0 {
		q := b / s
		s, xs, b, xb = b-q*s, xb-q*xs, s, xs
	}

	// b = gcd(x, n) and |xb| <= n.
	if b != 1 {
		return 0, false
	}

	if xb < 0 {
		xb += n
	}
	return xb, true
}

// BinaryModInverse returns the modular inverse of x modulo n,
// using the binary extended Euclidean algorithm.
// It uses only subtractions and shifts, so it is usually faster than [ModInverse].
// Output is always in [0, n).
//
// The caller must ensure that n is odd with 1 < n <= 2^62, x is positive, and x and n are coprime.
// None of these are checked: on invalid input the output is meaningless.
// Use [ModInverse] when the inputs are not known to satisfy them.
func BinaryModInverse(x, n int64) int64 {
	a, b := x, n
	u, v := int64(1), int64(0)

	// Invariants, for every iteration:
	//  b is odd, 0 <= u, v < n,
	//  a = u * x mod n, b = v * x mod n,
	//  gcd(a, b) = gcd(x, n) = 1.
	for a > 0 {
		if a&1 == 1 {
			if a >= b {
				a, u = a-b, u-v
			} else {
				a, b, u, v = b-a, a, v-u, u
			}

			if u < 0 {
				u += n
			}
		}

		// a is even here, and b is odd.
		a >>= 1

		// u = u / 2 mod n.
		if u&1 == 1 {
			u += n
		}
		u >>= 1
	}

	// a = 0 forces b = 1, so v * x = 1 mod n.
	return v
}
