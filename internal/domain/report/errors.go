package report

import "errors"

// noticeError is an export abort shown to the user as an informational
// message. It unwraps to a shared sentinel.
type noticeError struct {
	msg  string
	base error
}

func (e *noticeError) Error() string { return e.msg }
func (e *noticeError) Unwrap() error { return e.base }

var (
	ErrPeriodRequired    = errors.New("Silakan pilih bulan dan tahun untuk ekspor.")
	ErrNoRecords         = errors.New("Tidak ada data untuk diekspor!")
	ErrNoRecordsInPeriod = &noticeError{msg: "Tidak ada data pada bulan dan tahun yang dipilih.", base: ErrNoRecords}
	ErrUnsupportedFormat = errors.New("format ekspor tidak didukung")
	ErrUnknownReport     = errors.New("laporan tidak dikenali")
	ErrRenderFailed      = errors.New("failed to render report")
	ErrExportNotFound    = errors.New("export not found")
)
