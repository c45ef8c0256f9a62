package loader

import "errors"

var (
	// ErrPDFParseFailed indicates the PDF could not be opened or its
	// text could not be extracted.
	ErrPDFParseFailed = errors.New("pdf parsing failed")

	// ErrNoExtractableText indicates the PDF parsed but yielded no
	// textual content, typically a scanned document without OCR.
	ErrNoExtractableText = errors.New("no extractable text in document")
)
