// Package colorspace converts color values between RGB color spaces.
//
// A color space is described by a [Space]: the chromaticities of its three
// [Primaries], its reference [WhitePoint] and the transfer function which
// encodes linear light.  Conversions between two spaces go through CIE XYZ:
//
//	source RGB --decode--> linear RGB --M--> linear RGB --encode--> target RGB
//
// where M = XYZ→target · adaptation · source→XYZ is composed once by
// [Derive].  If the white points of the two spaces differ, the adaptation
// is a Bradford (or other [ConeSpace]) chromatic adaptation; otherwise it is
// omitted.
//
// All types are immutable values.  A derived [Conversion] can be used from
// any number of goroutines, and [Conversion.Convert] does not allocate.
// Derivation is cheap, but a [Cache] can memoize it.
//
// Malformed space definitions are rejected when spaces are constructed or
// conversions derived, with errors matching [ErrInvalidPrimaries],
// [ErrDegenerateWhitePoint] or [ErrSingularMatrix].  Converting values never
// fails; out-of-gamut values are returned unclamped.
package colorspace
