package topdf

import "errors"

// Sentinel errors for library operations.
var (
	// ErrUnknownType is returned when the input extension is not recognized.
	// The message is stored verbatim on the file entry, so it keeps the
	// wording the UI shows under a failed file.
	ErrUnknownType = errors.New("Unknown file type")

	// Extraction errors.
	ErrRead    = errors.New("failed to read file")
	ErrNotUTF8 = errors.New("file is not valid UTF-8")
	ErrDocx    = errors.New("failed to read DOCX document")

	// Renderer errors that fail the whole conversion.
	ErrCsv  = errors.New("failed to open CSV file")
	ErrXlsx = errors.New("failed to open XLSX workbook")

	// PDF output errors.
	ErrRenderPDF = errors.New("failed to render PDF")

	// ErrTaskFailure is recorded on a file entry when its conversion
	// goroutine ends without reporting a result. Like ErrUnknownType, the
	// message is shown verbatim under the failed file.
	ErrTaskFailure = errors.New("Task cancelled or panicked")

	// Font errors.
	ErrFontParse = errors.New("failed to parse font data")
	ErrNoFont    = errors.New("no usable font found")
)
