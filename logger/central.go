// Package logger is the central log for the application. There is no
// provision for "levels" of logging but a log permission must be obtained
// before a log entry can be made.
//
// In reality the Permission interface is most often satisfied by the Allow
// instance, meaning that logging is always allowed. But some contexts, the
// emulation core in particular, prefer to make logging decisions at arms
// length and so pass on a Permission given to them by their creator.
package logger

import (
	"io"
)

// Permission indicates whether the environment making a log request is
// allowed to create new log entries
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (_ allow) AllowLogging() bool {
	return true
}

// Allow indicates that the logging request should be allowed
var Allow Permission = allow{}

// the maximum number of entries in the central logger
const maxCentral = 256

// central is the single logger instance used by the package level functions
var central *logger

func init() {
	central = newLogger(maxCentral)
}

// Log adds an entry to the central logger
func Log(perm Permission, tag string, detail any) {
	if perm.AllowLogging() {
		central.log(tag, detail)
	}
}

// Logf adds a formatted entry to the central logger
func Logf(perm Permission, tag, format string, args ...any) {
	if perm.AllowLogging() {
		central.logf(tag, format, args...)
	}
}

// Clear all entries from central logger
func Clear() {
	central.clear()
}

// Write contents of central logger to io.Writer
func Write(output io.Writer) {
	central.write(output)
}

// WriteRecent writes the entries added since the last call to WriteRecent
func WriteRecent(output io.Writer) {
	central.writeRecent(output)
}

// Tail writes the last N entries to io.Writer. A number value of less than
// zero writes all entries
func Tail(output io.Writer, number int) {
	if number < 0 {
		central.write(output)
		return
	}
	central.tail(output, number)
}

// SetEcho prints entries to io.Writer as they are added. If writeRecent is
// true then entries not yet written with WriteRecent are written immediately
func SetEcho(output io.Writer, writeRecent bool) {
	central.setEcho(output, writeRecent)
}

// BorrowLog gives the provided function the critical section for the central
// log. The slice of Entry must not be used outside of the function
func BorrowLog(f func([]Entry)) {
	central.borrowLog(f)
}
