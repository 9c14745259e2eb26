package issue

import "errors"

var ErrReportNotFound = errors.New("issue report not found")
