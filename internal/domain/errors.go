package domain

import "errors"

var (
	ErrNotFound        = errors.New("resource not found")
	ErrFileNotFound    = errors.New("spreadsheet file not found")
	ErrSheetNotFound   = errors.New("sheet not found in workbook")
	ErrRetrievalFailed = errors.New("file retrieval from remote store failed")
	ErrUnknownDomain   = errors.New("unknown domain")
	ErrMissingTerm     = errors.New("search term is required")
	ErrSyncBusy        = errors.New("a sync or search pass is already in progress")
	ErrSyncUnsupported = errors.New("sync is only defined for the cadastro sheet")
)
