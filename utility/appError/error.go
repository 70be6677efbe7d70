package appError

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Err ... error carrying the HTTP status and the machine readable code
type Err struct {
	ErrCode int
	ErrType string
	Err     error
	ErrData interface{}
}

func (e Err) Error() string {
	return fmt.Sprintf("%s", e.Err)
}

// Unwrap exposes the underlying error to errors.Is / errors.As
func (e Err) Unwrap() error {
	return e.Err
}

// New ... builds an Err from a status, code and message
func New(status int, errType string, message string) Err {
	return Err{ErrCode: status, ErrType: errType, Err: errors.New(message)}
}

// Wrap ... builds an Err around an existing error
func Wrap(status int, errType string, err error) Err {
	return Err{ErrCode: status, ErrType: errType, Err: err}
}

// As ... converts any error into an Err, defaulting to an internal server error
func As(err error, fallbackType string) Err {
	var appErr Err
	if errors.As(err, &appErr) {
		return appErr
	}
	return Err{ErrCode: http.StatusInternalServerError, ErrType: fallbackType, Err: err}
}

func GetSQLErr(err error) string {
	errDef := strings.Split(err.Error(), ":")
	errSubstring := errDef[1:]
	switch errDef[0] {
	case "Error 1062":
		return strings.Join(errSubstring, " ")
	case "Error 1366":
		return strings.Join(errSubstring, " ")
	default:
		return err.Error()
	}
}
