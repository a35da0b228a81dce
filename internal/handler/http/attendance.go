package http

import (
	"log/slog"
	"net/http"

	"github.com/anandamid/presensi-backend-go/internal/domain/attendance"
	"github.com/anandamid/presensi-backend-go/internal/handler/http/response"
)

// maxPhotoUploadBytes bounds the multipart form held in memory per request.
const maxPhotoUploadBytes = 10 << 20

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	AdminList(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// CheckIn implements AttendanceHandler. The request is multipart: location
// fields plus the selfie under "foto".
func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	if err := r.ParseMultipartForm(maxPhotoUploadBytes); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	req := &attendance.CheckInRequest{
		Latitude:        parseFloatForm(r, "latitude"),
		Longitude:       parseFloatForm(r, "longitude"),
		Accuracy:        parseFloatForm(r, "accuracy"),
		StatusKehadiran: attendance.PresenceStatus(r.FormValue("status_kehadiran")),
	}
	if files := r.MultipartForm.File["foto"]; len(files) > 0 {
		req.Photo = files[0]
	}

	resp, err := h.attendanceService.CheckIn(r.Context(), userID, req)
	if err != nil {
		slog.Warn("CheckIn rejected", "user_id", userID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in", resp)
}

// CheckOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	if err := r.ParseMultipartForm(maxPhotoUploadBytes); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	req := &attendance.CheckOutRequest{
		Latitude:  parseFloatForm(r, "latitude"),
		Longitude: parseFloatForm(r, "longitude"),
		Accuracy:  parseFloatForm(r, "accuracy"),
	}
	if files := r.MultipartForm.File["foto"]; len(files) > 0 {
		req.Photo = files[0]
	}

	resp, err := h.attendanceService.CheckOut(r.Context(), userID, req)
	if err != nil {
		slog.Warn("CheckOut rejected", "user_id", userID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Today implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	resp, err := h.attendanceService.Today(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// History implements AttendanceHandler. ?month=YYYY-MM, defaults to the
// current month.
func (h *AttendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	resp, err := h.attendanceService.History(r.Context(), userID, r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// AdminList implements AttendanceHandler. ?tanggal=YYYY-MM-DD, defaults to
// today.
func (h *AttendanceHandlerImpl) AdminList(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attendanceService.ListByDate(r.Context(), r.URL.Query().Get("tanggal"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
