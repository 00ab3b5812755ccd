package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/roach88/solid/internal/compiler"
	"github.com/roach88/solid/internal/shape"
)

// Error codes for failures outside document validation.
const (
	ErrCodeGeneric    = "E001" // Generic/unknown error
	ErrCodeReadFailed = "E002" // stdin could not be read
	ErrCodeEmptyInput = "E003" // nothing on stdin
)

// readInput reads the whole of r. Empty input is a command error.
func readInput(f *OutputFormatter, r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		_ = f.Error(ErrCodeReadFailed, fmt.Sprintf("reading stdin: %v", err), nil)
		return nil, WrapExitError(ExitCommandError, "reading stdin", err)
	}
	if len(data) == 0 {
		_ = f.Error(ErrCodeEmptyInput, "no input on stdin", nil)
		return nil, NewExitError(ExitCommandError, "no input on stdin")
	}
	f.VerboseLog("Read %d byte(s) from stdin", len(data))
	return data, nil
}

// errorCode picks the code reported for err.
func errorCode(err error) string {
	var verrs compiler.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Code
	}
	var verr compiler.ValidationError
	if errors.As(err, &verr) {
		return verr.Code
	}
	var serr *shape.Error
	if errors.As(err, &serr) {
		return string(serr.Code)
	}
	return ErrCodeGeneric
}
