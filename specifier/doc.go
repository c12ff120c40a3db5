// Package specifier declares how primitive values are carried inside packed
// bit-fields.
//
// A packed bit-field container stores each field in an arbitrary, possibly
// non byte aligned, bit range. The packing engine that shifts and masks
// those ranges only ever deals in unsigned integers. A specifier tells it
// three things about a logical type:
//
//  1. How many bits the value occupies (Bits).
//  2. Which unsigned carrier type holds those bits.
//  3. How to convert a value into its carrier (IntoBytes) and back
//     (FromBytes).
//
// Specifier Table
//
//  | Specifier | Logical   | Carrier  | Bits |
//  |-----------|-----------|----------|------|
//  | Bool      | bool      | uint8    | 1    |
//  | Uint8     | uint8     | uint8    | 8    |
//  | Int8      | int8      | uint8    | 8    |
//  | Uint16    | uint16    | uint16   | 16   |
//  | Int16     | int16     | uint16   | 16   |
//  | Uint32    | uint32    | uint32   | 32   |
//  | Int32     | int32     | uint32   | 32   |
//  | Float32   | float32   | uint32   | 32   |
//  | Uint64    | uint64    | uint64   | 64   |
//  | Int64     | int64     | uint64   | 64   |
//  | Float64   | float64   | uint64   | 64   |
//  | Uint128   | num.U128  | num.U128 | 128  |
//  | Int128    | num.I128  | num.U128 | 128  |
//  |-----------|-----------|----------|------|
//
// Integers are carried as their two's complement bit pattern and floats as
// their IEEE-754 bit pattern (NaN payloads included). Every carrier value
// for those types is a legal value, so their conversions never fail.
//
// Bool is the odd one out. It occupies a single bit but the smallest
// carrier is a byte. The packing engine must mask the carrier to one bit
// before calling FromBytes; any other byte is reported as an
// InvalidBitPatternError carrying the offending value.
//
// All conversions are pure and safe for concurrent use.
package specifier

//go:generate go run ../cmd/specgen -table specifiers.toml -out specifiers_gen.go
