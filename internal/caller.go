package internal

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// CallSite returns a short "file.go:line" reference for the caller
// skip frames up the stack, or "" if the stack is too shallow.
func CallSite(skip int) string {
	if skip < 0 {
		skip = 0
	}

	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return ""
	}
	file = filepath.Base(file)

	var sb strings.Builder
	sb.Grow(len(file) + 11)
	sb.WriteString(file)
	sb.WriteByte(':')
	sb.WriteString(strconv.Itoa(line))
	return sb.String()
}
