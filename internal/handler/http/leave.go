package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/anandamid/presensi-backend-go/internal/domain/leave"
	"github.com/anandamid/presensi-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	AdminList(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Submit implements LeaveHandler. Multipart: span fields plus an optional
// proof attachment under "foto_bukti".
func (h *LeaveHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	if err := r.ParseMultipartForm(maxPhotoUploadBytes); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	req := &leave.SubmitLeaveRequest{
		TanggalMulai:   r.FormValue("tanggal_mulai"),
		JamMulai:       r.FormValue("jam_mulai"),
		TanggalSelesai: r.FormValue("tanggal_selesai"),
		JamSelesai:     r.FormValue("jam_selesai"),
		Alasan:         r.FormValue("alasan"),
	}
	if files := r.MultipartForm.File["foto_bukti"]; len(files) > 0 {
		req.FotoBukti = files[0]
	}

	resp, err := h.leaveService.Submit(r.Context(), userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", resp)
}

// ListMine implements LeaveHandler.
func (h *LeaveHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	resp, err := h.leaveService.ListMine(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// AdminList implements LeaveHandler. ?status=PENDING|APPROVED|REJECTED
// filters, empty lists everything.
func (h *LeaveHandlerImpl) AdminList(w http.ResponseWriter, r *http.Request) {
	var status *leave.Status
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := leave.Status(raw)
		status = &s
	}

	resp, err := h.leaveService.ListAll(r.Context(), status)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Decide implements LeaveHandler.
func (h *LeaveHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid leave request id", nil)
		return
	}

	var req leave.DecideLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.leaveService.Decide(r.Context(), id, &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request "+string(req.Status), resp)
}
