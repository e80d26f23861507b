// Command capi builds the C shared library exposing language detection.
//
//	go build -buildmode=c-shared -o libpolyglot.so ./capi
//
// Every function returns a pointer into a table of NUL terminated codes allocated once
// when the library is loaded. Callers must not free or modify it.
package main

/*
#include <stddef.h>
#include <string.h>
*/
import "C"

import (
	"unsafe"

	"github.com/tsingjyujing/polyglot/boundary"
	"github.com/tsingjyujing/polyglot/text"
)

var (
	codeStrings  map[text.LanguageCode]*C.char
	undetermined *C.char
)

func init() {
	codes := text.SupportedCodes()
	codeStrings = make(map[text.LanguageCode]*C.char, len(codes)+1)
	for _, code := range codes {
		// never freed, the table lives as long as the process
		codeStrings[code] = C.CString(string(code))
	}
	undetermined = C.CString(string(text.Undetermined))
	codeStrings[text.Undetermined] = undetermined
}

func codeString(code text.LanguageCode) *C.char {
	if s, ok := codeStrings[code]; ok {
		return s
	}
	return undetermined
}

func detect(str *C.char, n C.size_t) boundary.Result {
	if str == nil {
		return boundary.Result{Code: text.Undetermined}
	}
	input := unsafe.Slice((*byte)(unsafe.Pointer(str)), int(n))
	return boundary.Default().Detect(input)
}

// detect_language classifies a NUL terminated string.
// The buffer must be terminated, prefer detect_language_n.
//
//export detect_language
func detect_language(str *C.char) *C.char {
	if str == nil {
		return undetermined
	}
	return codeString(detect(str, C.strlen(str)).Code)
}

// detect_language_n classifies len bytes starting at str.
//
//export detect_language_n
func detect_language_n(str *C.char, n C.size_t) *C.char {
	return codeString(detect(str, n).Code)
}

// detect_language_ex is detect_language_n also reporting reliability, is_reliable may be NULL.
//
//export detect_language_ex
func detect_language_ex(str *C.char, n C.size_t, isReliable *C.int) *C.char {
	result := detect(str, n)
	if isReliable != nil {
		*isReliable = 0
		if result.Reliable {
			*isReliable = 1
		}
	}
	return codeString(result.Code)
}

func main() {}
