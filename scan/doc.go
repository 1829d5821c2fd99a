// Package scan finds runs of fixed-width numeric values in raw bytes.
//
// A [Scanner] decodes a buffer at a fixed stride with a [Decoder], tests
// each decoded value with a [Predicate], and reports maximal runs of
// accepted values that are at least a minimum length long.
//
// [Scanner.FindNext] finds a single run and returns the unscanned remainder.
// [Scanner.Runs] wraps repeated calls in a [Seq] that yields runs lazily.
package scan
