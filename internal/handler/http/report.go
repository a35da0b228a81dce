package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/anandamid/presensi-backend-go/internal/domain/report"
	"github.com/anandamid/presensi-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Export(w http.ResponseWriter, r *http.Request)
	DeleteMonth(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// Export implements ReportHandler. ?month=YYYY-MM&format=csv|xlsx streams
// the rendered file.
func (h *ReportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := &report.ExportRequest{
		Month:  q.Get("month"),
		Format: report.ExportFormat(q.Get("format")),
	}

	export, err := h.reportService.Export(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(export.Data)
}

// DeleteMonth implements ReportHandler.
func (h *ReportHandlerImpl) DeleteMonth(w http.ResponseWriter, r *http.Request) {
	var req report.DeleteMonthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	deleted, err := h.reportService.DeleteMonth(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance records deleted", map[string]interface{}{
		"month":   req.Month,
		"deleted": deleted,
	})
}
