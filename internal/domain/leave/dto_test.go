package leave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmit() *SubmitLeaveRequest {
	return &SubmitLeaveRequest{
		TanggalMulai:   "2026-01-06",
		JamMulai:       "08:00",
		TanggalSelesai: "2026-01-06",
		JamSelesai:     "12:00",
		Alasan:         "mengurus dokumen kampus",
	}
}

func TestSubmitLeaveValidate(t *testing.T) {
	assert.Empty(t, validSubmit().Validate())
}

func TestSubmitLeaveValidate_MissingFields(t *testing.T) {
	req := &SubmitLeaveRequest{}
	errs := req.Validate()
	require.NotEmpty(t, errs)
	fields := errs.ToMap()
	for _, f := range []string{"tanggal_mulai", "tanggal_selesai", "jam_mulai", "jam_selesai", "alasan"} {
		assert.Contains(t, fields, f)
	}
}

func TestSubmitLeaveValidate_EndDateBeforeStart(t *testing.T) {
	req := validSubmit()
	req.TanggalSelesai = "2026-01-05"

	errs := req.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "tanggal_selesai", errs[0].Field)
}

func TestSubmitLeaveValidate_SameDayEndClockMustFollowStart(t *testing.T) {
	for _, jam := range []string{"08:00", "07:30"} {
		req := validSubmit()
		req.JamSelesai = jam

		errs := req.Validate()
		require.Len(t, errs, 1, "jam_selesai %q must be rejected", jam)
		assert.Equal(t, "jam_selesai", errs[0].Field)
	}

	// On a multi-day request the clocks are independent.
	req := validSubmit()
	req.TanggalSelesai = "2026-01-07"
	req.JamSelesai = "07:30"
	assert.Empty(t, req.Validate())
}

func TestDecideLeaveValidate(t *testing.T) {
	assert.Empty(t, (&DecideLeaveRequest{Status: StatusApproved}).Validate())
	assert.Empty(t, (&DecideLeaveRequest{Status: StatusRejected}).Validate())
	assert.NotEmpty(t, (&DecideLeaveRequest{Status: StatusPending}).Validate())
	assert.NotEmpty(t, (&DecideLeaveRequest{Status: "MAYBE"}).Validate())
}
