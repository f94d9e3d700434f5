package logger_test

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/SebastianRueClausen/spillestation/logger"
	"github.com/SebastianRueClausen/spillestation/test"
)

// test central logger and the use of the Tail() function
func TestCentralLogger(t *testing.T) {
	logger.Clear()
	w := &strings.Builder{}

	logger.Write(w)
	test.ExpectEquality(t, w.String(), "")

	logger.Log(logger.Allow, "test", "this is a test")
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	// clear the builder before continuing, makes comparisons easier to manage
	w.Reset()

	logger.Log(logger.Allow, "test2", "this is another test")
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	logger.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for exactly the correct number of entries is okay
	w.Reset()
	logger.Tail(w, 2)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Reset()
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Reset()
	logger.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")

	// a negative number writes everything
	w.Reset()
	logger.Tail(w, -1)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")
}

// repeated entries are coalesced rather than appended
func TestRepeatedEntries(t *testing.T) {
	logger.Clear()
	w := &strings.Builder{}

	logger.Log(logger.Allow, "tag", "detail")
	logger.Log(logger.Allow, "tag", "detail")
	logger.Log(logger.Allow, "tag", "detail")
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "tag: detail (repeat x3)\n")
}

// test permissions by randomising whether logging is allowed or not. there's no
// need to do the randomisation but it's as good a demonstration as anything
// else I can think of
type prohibitLogging struct {
	allow int
}

func (p prohibitLogging) AllowLogging() bool {
	return p.allow > 50
}

func TestPermissions(t *testing.T) {
	w := &strings.Builder{}

	var p prohibitLogging

	for range 100 {
		p.allow = rand.IntN(100)
		logger.Clear()
		w.Reset()
		logger.Log(p, "tag", "detail")
		logger.Write(w)
		if p.AllowLogging() {
			test.ExpectEquality(t, w.String(), "tag: detail\n")
		} else {
			test.ExpectEquality(t, w.String(), "")
		}
	}
}

// the Log() function handles error types through the %v verb
func TestErrorLogging(t *testing.T) {
	logger.Clear()
	w := &strings.Builder{}

	err := errors.New("test error")

	logger.Log(logger.Allow, "tag", err)
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "tag: test error\n")

	logger.Clear()
	w.Reset()

	// test "wrapping" of errors using the %v verb
	logger.Logf(logger.Allow, "tag", "wrapped: %v", err)
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "tag: wrapped: test error\n")
}

// the Log() function handles Stringer types
type stringerTest struct{}

func (_ stringerTest) String() string {
	return "stringer test"
}

func TestStringerLogging(t *testing.T) {
	logger.Clear()
	w := &strings.Builder{}

	logger.Log(logger.Allow, "tag", stringerTest{})
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "tag: stringer test\n")
}

// for any other type, the Log() function logs the detail argument using the
// %v verb from the fmt package
func TestIntLogging(t *testing.T) {
	logger.Clear()
	w := &strings.Builder{}

	logger.Log(logger.Allow, "tag", 100)
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "tag: 100\n")
}
