/*
Package xlog provides a small Logger interface and supporting functions
to control debug output.

The standard library log package always produces output. For debugging
a codec it is more convenient to have output that can be switched off
completely without paying for the formatting of the arguments, and
without sprinkling the code with nil checks. The functions of this
package accept a nil Logger and do nothing in that case.

The Logger interface is satisfied by the log.Logger type.
*/
package xlog

import "fmt"

// Logger is the interface required by the output functions of this
// package. The log.Logger type supports this interface.
type Logger interface {
	Output(calldepth int, s string) error
}

// Print outputs the arguments using the logger. If the logger is nil
// nothing will be printed.
func Print(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprint(v...))
	}
}

// Printf prints the arguments using the format string. If the logger
// argument is nil nothing will be printed.
func Printf(l Logger, format string, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintf(format, v...))
	}
}

// Println prints the arguments and adds a newline. If the logger
// argument is nil nothing will be printed.
func Println(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintln(v...))
	}
}
