package report

import (
	"context"
	"errors"

	"github.com/anandamid/presensi-backend-go/internal/pkg/validator"
)

var ErrEmptyRange = errors.New("no attendance records in the requested range")

type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatXLSX ExportFormat = "xlsx"
)

type ExportRequest struct {
	Month  string
	Format ExportFormat
}

func (r *ExportRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must use format YYYY-MM"})
	}

	switch r.Format {
	case FormatCSV, FormatXLSX:
	case "":
		r.Format = FormatCSV
	default:
		errs = append(errs, validator.ValidationError{Field: "format", Message: "format must be csv or xlsx"})
	}

	return errs
}

type DeleteMonthRequest struct {
	Month string `json:"month"`
}

func (r *DeleteMonthRequest) Validate() validator.ValidationErrors {
	if !validator.IsValidMonth(r.Month) {
		return validator.ValidationErrors{{Field: "month", Message: "month must use format YYYY-MM"}}
	}
	return nil
}

// Export is a rendered report ready to stream to the client.
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}

type ReportService interface {
	Export(ctx context.Context, req *ExportRequest) (*Export, error)

	// DeleteMonth bulk-removes one month of attendance and returns how many
	// rows were removed.
	DeleteMonth(ctx context.Context, req *DeleteMonthRequest) (int64, error)
}
