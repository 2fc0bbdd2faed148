// Package convert coerces FITS header and table values into Go scalars.
//
// The FITS parser hands back header values and table cells as interface{}
// holding whatever Go type matches the on-disk encoding: a BITPIX or TFORM
// of "D" yields float64, "E" yields float32, "J" yields int32, integer
// header cards yield int, and so on. Readers only care about a handful of
// target types, so this package centralises the widening rules.
//
// # Type Mapping Strategy
//
//	Source                     | Float64 | Int        | String
//	---------------------------|---------|------------|--------
//	int, int8..int64           | yes     | yes        | no
//	uint8..uint64              | yes     | yes (fits) | no
//	float32, float64           | yes     | if integral| no
//	string                     | no      | no         | yes
//	bool                       | no      | no         | no
//
// Widening never loses precision for float32 or 32-bit integers. Narrowing
// (float to int) is only allowed for integral values.
//
// # Key Functions
//
//   - [Float64]: Widens a numeric value to float64
//   - [Int]: Converts a numeric value to int when exact
//   - [String]: Asserts a string value
//   - [Float64s]: Converts a slice of cells to []float64
//   - [Scalar]: Normalises a value to string, int64, float64 or bool
package convert
