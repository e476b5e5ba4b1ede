package util

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/ttacon/chalk"
)

// FailWith prints err, and its root cause when wrapped, in red and exits 1.
func FailWith(err error) {
	fmt.Fprintln(os.Stderr, chalk.Red.Color("error: "+err.Error()))
	if cause := errors.Cause(err); cause != err {
		fmt.Fprintln(os.Stderr, chalk.Red.Color("cause: "+cause.Error()))
	}
	os.Exit(1)
}

func WarnWith(err error) {
	fmt.Fprintln(os.Stderr, chalk.Yellow.Color("warning: "+err.Error()))
}
