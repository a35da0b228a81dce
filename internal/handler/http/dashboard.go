package http

import (
	"net/http"

	"github.com/anandamid/presensi-backend-go/internal/domain/dashboard"
	"github.com/anandamid/presensi-backend-go/internal/handler/http/response"
	"github.com/anandamid/presensi-backend-go/internal/pkg/validator"
)

type DashboardHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// Summary implements DashboardHandler. ?tanggal=YYYY-MM-DD, defaults to
// today.
func (h *DashboardHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	tanggal := r.URL.Query().Get("tanggal")

	var (
		resp *dashboard.DaySummary
		err  error
	)
	if tanggal == "" {
		resp, err = h.dashboardService.Today(r.Context())
	} else {
		if !validator.IsValidDate(tanggal) {
			response.BadRequest(w, "tanggal must use format YYYY-MM-DD", nil)
			return
		}
		resp, err = h.dashboardService.ForDate(r.Context(), tanggal)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
