package leave

import (
	"mime/multipart"
	"time"

	"github.com/anandamid/presensi-backend-go/internal/pkg/shift"
	"github.com/anandamid/presensi-backend-go/internal/pkg/validator"
)

type SubmitLeaveRequest struct {
	TanggalMulai   string
	JamMulai       string
	TanggalSelesai string
	JamSelesai     string
	Alasan         string
	FotoBukti      *multipart.FileHeader
}

func (r *SubmitLeaveRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if !validator.IsValidDate(r.TanggalMulai) {
		errs = append(errs, validator.ValidationError{Field: "tanggal_mulai", Message: "start date must use format YYYY-MM-DD"})
	}
	if !validator.IsValidDate(r.TanggalSelesai) {
		errs = append(errs, validator.ValidationError{Field: "tanggal_selesai", Message: "end date must use format YYYY-MM-DD"})
	}
	mulai, err := shift.ParseClock(r.JamMulai)
	if err != nil {
		errs = append(errs, validator.ValidationError{Field: "jam_mulai", Message: "start time must use format HH:MM"})
	}
	selesai, err := shift.ParseClock(r.JamSelesai)
	if err != nil {
		errs = append(errs, validator.ValidationError{Field: "jam_selesai", Message: "end time must use format HH:MM"})
	}
	if validator.IsEmpty(r.Alasan) {
		errs = append(errs, validator.ValidationError{Field: "alasan", Message: "a reason is required"})
	}

	if len(errs) == 0 {
		if r.TanggalSelesai < r.TanggalMulai {
			errs = append(errs, validator.ValidationError{Field: "tanggal_selesai", Message: "end date must not be before start date"})
		} else if r.TanggalSelesai == r.TanggalMulai && !mulai.Before(selesai) {
			errs = append(errs, validator.ValidationError{Field: "jam_selesai", Message: "end time must be after start time on a same-day request"})
		}
	}

	return errs
}

type DecideLeaveRequest struct {
	Status Status `json:"status"`
}

func (r *DecideLeaveRequest) Validate() validator.ValidationErrors {
	if r.Status != StatusApproved && r.Status != StatusRejected {
		return validator.ValidationErrors{{Field: "status", Message: "status must be APPROVED or REJECTED"}}
	}
	return nil
}

type LeaveResponse struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	Nama           string    `json:"nama,omitempty"`
	TanggalMulai   string    `json:"tanggal_mulai"`
	JamMulai       string    `json:"jam_mulai"`
	TanggalSelesai string    `json:"tanggal_selesai"`
	JamSelesai     string    `json:"jam_selesai"`
	Alasan         string    `json:"alasan"`
	Status         Status    `json:"status"`
	FotoBuktiURL   *string   `json:"foto_bukti_url,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func ToLeaveResponse(l *Leave, urlFor func(path string) string) *LeaveResponse {
	resp := &LeaveResponse{
		ID:             l.ID,
		UserID:         l.UserID,
		Nama:           l.Nama,
		TanggalMulai:   l.TanggalMulai,
		JamMulai:       l.JamMulai.String(),
		TanggalSelesai: l.TanggalSelesai,
		JamSelesai:     l.JamSelesai.String(),
		Alasan:         l.Alasan,
		Status:         l.Status,
		CreatedAt:      l.CreatedAt,
	}
	if urlFor != nil && l.FotoBuktiPath != nil {
		u := urlFor(*l.FotoBuktiPath)
		resp.FotoBuktiURL = &u
	}
	return resp
}
