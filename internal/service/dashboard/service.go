package dashboard

import (
	"context"
	"time"

	"github.com/anandamid/presensi-backend-go/internal/domain/attendance"
	"github.com/anandamid/presensi-backend-go/internal/domain/dashboard"
	"github.com/anandamid/presensi-backend-go/internal/domain/leave"
	"github.com/anandamid/presensi-backend-go/internal/domain/user"
	"github.com/anandamid/presensi-backend-go/internal/pkg/shift"
)

type DashboardServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	userRepo       user.UserRepository
	leaveRepo      leave.LeaveRepository
	timezone       *time.Location
}

func NewDashboardService(attendanceRepo attendance.AttendanceRepository, userRepo user.UserRepository, leaveRepo leave.LeaveRepository, tz *time.Location) dashboard.DashboardService {
	return &DashboardServiceImpl{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		leaveRepo:      leaveRepo,
		timezone:       tz,
	}
}

// Today implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Today(ctx context.Context) (*dashboard.DaySummary, error) {
	return s.ForDate(ctx, shift.CivilDate(time.Now(), s.timezone))
}

// ForDate implements dashboard.DashboardService.
func (s *DashboardServiceImpl) ForDate(ctx context.Context, tanggal string) (*dashboard.DaySummary, error) {
	rows, err := s.attendanceRepo.ListByDate(ctx, tanggal)
	if err != nil {
		return nil, err
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	present := make(map[int64]struct{}, len(rows))
	for _, row := range rows {
		present[row.UserID] = struct{}{}
	}

	// Interns without a row but covered by an approved izin count as on
	// leave, not as missing.
	totalPKL, onLeave := 0, 0
	for _, u := range users {
		if u.Role != user.RolePKL || !u.IsActive {
			continue
		}
		totalPKL++
		if _, ok := present[u.ID]; ok {
			continue
		}
		covered, err := s.leaveRepo.HasApprovedLeave(ctx, u.ID, tanggal)
		if err != nil {
			return nil, err
		}
		if covered {
			onLeave++
		}
	}

	summary := dashboard.Summarize(tanggal, rows, totalPKL, onLeave)
	return &summary, nil
}
