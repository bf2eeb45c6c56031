package document

import "errors"

var ErrInvalidFileType = errors.New("unsupported document type")
