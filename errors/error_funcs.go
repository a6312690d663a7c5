package errors

import (
	"os"
)

// OsExit is a variable for testing, so we can mock os.Exit.
var OsExit = os.Exit

// CheckErrorAndPrint formats and prints an error message to stderr.
func CheckErrorAndPrint(err error) {
	if err == nil {
		return
	}
	formatted := Format(err, DefaultFormatterConfig())
	os.Stderr.WriteString(formatted + "\n")
}

// CheckErrorPrintAndExit prints an error message and exits with the
// error's exit code.
func CheckErrorPrintAndExit(err error) {
	if err == nil {
		return
	}

	CheckErrorAndPrint(err)
	Exit(GetExitCode(err))
}

// Exit exits the program with the specified exit code.
func Exit(exitCode int) {
	OsExit(exitCode)
}
