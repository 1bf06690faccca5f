package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

// ImportRequest carries one uploaded file through the pipeline.
type ImportRequest struct {
	FileName string
	FileSize int64
	Data     []byte
}

type Service interface {
	// Validate rejects a file before the pipeline runs: wrong extension,
	// empty content, no parseable data rows, or none of the recognized key
	// headers. A validation rejection creates no ImportRecord.
	Validate(ctx context.Context, req ImportRequest) error

	// Import normalizes the file, persists the resulting activities against
	// a new ImportRecord and reports a summary. Row-level failures never
	// flip the record to failure; pipeline-level errors do, and the record
	// is persisted either way so the outcome stays auditable.
	Import(ctx context.Context, req ImportRequest) (ImportSummary, error)

	RecentImports(ctx context.Context, limit int) ([]ImportRecord, error)

	// DeleteImport removes a record and, through the cascade, every activity
	// it produced.
	DeleteImport(ctx context.Context, id snowflake.ID) error
}

var (
	ErrNotCSV         = errors.New("not_csv")
	ErrEmptyFile      = errors.New("empty_file")
	ErrNoDataRows     = errors.New("no_data_rows")
	ErrMissingHeaders = errors.New("missing_key_headers")
	ErrUnreadableFile = errors.New("unreadable_file")
	ErrRecordNotFound = errors.New("import_record_not_found")
)
