package exceptions

import (
	"fmt"
	"runtime"
)

type CustomError struct {
	StatusCode    int        `json:"status_code"`
	Success       bool       `json:"success"`
	ClientMessage string     `json:"message"`
	DevMessage    string     `json:"dev_message,omitempty"`
	Locations     []Location `json:"locations,omitempty"`
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if len(e.Locations) == 0 {
		return e.DevMessage
	}
	origin := e.Locations[0]
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, origin.File, origin.Line, origin.FunctionName)
}

// BuildNewCustomError builds the typed error every constructor in types.go
// goes through. The wrapped error's text is folded into DevMessage; when the
// wrapped error is itself a CustomError its locations are carried over so the
// full propagation path stays visible in logs.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	locations := []Location{getLocation(3)}
	if err != nil {
		if inner, ok := err.(*CustomError); ok {
			locations = append(locations, inner.Locations...)
			devMessage = fmt.Sprintf("%s: %s", devMessage, inner.DevMessage)
		} else {
			devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
		}
	}
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Locations:     locations,
	}
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         "unknown",
			Line:         0,
			FunctionName: "unknown",
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
