// Package test contains functions useful for testing. In particular the
// "expectation" functions which keep test code terse and generate consistent
// failure messages.
//
// Tests are expected to use these functions rather than calling t.Error()
// directly. The functions return true if the expectation was met, allowing a
// test to bail out of a longer sequence early if required.
package test
