package effect

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

type getObjIv func(uint32, uint32, *int32)
type getObjInfoLog func(uint32, int32, *int32, *uint8)

func getGlError(glHandle uint32, checkTrueParam uint32, getObjIvFn getObjIv, getObjInfoLogFn getObjInfoLog, failMsg string) error {

	var success int32
	getObjIvFn(glHandle, checkTrueParam, &success)

	if success == gl.FALSE {

		var logLength int32

		getObjIvFn(glHandle, gl.INFO_LOG_LENGTH, &logLength)

		logStr := strings.Repeat("\x00", int(logLength))

		if len(logStr) < 1 {
			logStr = "\x00"
		}

		log := gl.Str(logStr)
		getObjInfoLogFn(glHandle, logLength, nil, log)

		return fmt.Errorf("%s: %s", failMsg, gl.GoStr(log))
	}

	return nil
}

// ClearGlErrors drains every pending error flag so that a later check
// cannot misattribute a stale error to the wrapped call.
func ClearGlErrors() {
	for gl.GetError() != gl.NO_ERROR {
	}
}

// CheckGlError queries the error flag after a call site worth guarding
// (uniform lookups, draw calls). Every pending error is folded into one
// returned error carrying the caller's file:line and the expression text.
// Returns nil when no error is pending. Opt-in: callers wrap only the
// calls they consider risky, pairing ClearGlErrors before the call with
// CheckGlError after it.
func CheckGlError(expr string) error {

	var xErr error

	callFile := "unknown"
	callLine := 0

	_, file, line, ok := runtime.Caller(1)
	if ok {
		callFile = filepath.Base(file)
		callLine = line
	}

	for {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			break
		}

		callErr := fmt.Errorf("[OpenGL Error] (0x%04x) at %s:%d in %s", code, callFile, callLine, expr)

		if xErr == nil {
			xErr = callErr
		} else {
			xErr = fmt.Errorf("%v; %v", xErr, callErr)
		}
	}

	return xErr
}
