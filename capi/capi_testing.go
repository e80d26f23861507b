package main

/*
#include <stdlib.h>
*/
import "C"

import "unsafe"

// Go side drivers for the exported functions, so tests can exercise the C ABI
// without importing "C" themselves.

type exportResult struct {
	code string
	ptr  unsafe.Pointer
}

func newExportResult(p *C.char) exportResult {
	return exportResult{code: C.GoString(p), ptr: unsafe.Pointer(p)}
}

func callDetectLanguage(s *string) exportResult {
	if s == nil {
		return newExportResult(detect_language(nil))
	}
	cs := C.CString(*s)
	defer C.free(unsafe.Pointer(cs))
	return newExportResult(detect_language(cs))
}

func callDetectLanguageN(s string, n int) exportResult {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	return newExportResult(detect_language_n(cs, C.size_t(n)))
}

func callDetectLanguageNullN(n int) exportResult {
	return newExportResult(detect_language_n(nil, C.size_t(n)))
}

// callDetectLanguageEx seeds is_reliable with seed so tests can tell whether it was written.
// A nil seed passes NULL.
func callDetectLanguageEx(s string, seed *int) (exportResult, int) {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	if seed == nil {
		return newExportResult(detect_language_ex(cs, C.size_t(len(s)), nil)), 0
	}
	reliable := C.int(*seed)
	result := newExportResult(detect_language_ex(cs, C.size_t(len(s)), &reliable))
	return result, int(reliable)
}
