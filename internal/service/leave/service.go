package leave

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/anandamid/presensi-backend-go/internal/domain/leave"
	"github.com/anandamid/presensi-backend-go/internal/pkg/database"
	"github.com/anandamid/presensi-backend-go/internal/pkg/shift"
	"github.com/anandamid/presensi-backend-go/internal/repository/postgresql"
	"github.com/anandamid/presensi-backend-go/internal/service/file"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveRepository
	fileService file.FileService
}

func NewLeaveService(db *database.DB, repo leave.LeaveRepository, fileService file.FileService) leave.LeaveService {
	return &LeaveServiceImpl{
		db:              db,
		LeaveRepository: repo,
		fileService:     fileService,
	}
}

// Submit implements leave.LeaveService.
func (s *LeaveServiceImpl) Submit(ctx context.Context, userID int64, req *leave.SubmitLeaveRequest) (*leave.LeaveResponse, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, errs
	}

	jamMulai, _ := shift.ParseClock(req.JamMulai)
	jamSelesai, _ := shift.ParseClock(req.JamSelesai)

	l := &leave.Leave{
		UserID:         userID,
		TanggalMulai:   req.TanggalMulai,
		JamMulai:       jamMulai,
		TanggalSelesai: req.TanggalSelesai,
		JamSelesai:     jamSelesai,
		Alasan:         req.Alasan,
		Status:         leave.StatusPending,
	}

	if req.FotoBukti != nil {
		f, err := req.FotoBukti.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open proof attachment: %w", err)
		}
		defer f.Close()

		path, err := s.fileService.UploadLeaveProof(ctx, userID, f, req.FotoBukti.Filename)
		if err != nil {
			return nil, err
		}
		l.FotoBuktiPath = &path
	}

	if err := s.LeaveRepository.Create(ctx, l); err != nil {
		if l.FotoBuktiPath != nil {
			_ = s.fileService.DeleteFile(ctx, *l.FotoBuktiPath)
		}
		return nil, err
	}

	return leave.ToLeaveResponse(l, s.fileService.URLFor), nil
}

// ListMine implements leave.LeaveService.
func (s *LeaveServiceImpl) ListMine(ctx context.Context, userID int64) ([]*leave.LeaveResponse, error) {
	rows, err := s.LeaveRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.toResponses(rows), nil
}

// ListAll implements leave.LeaveService.
func (s *LeaveServiceImpl) ListAll(ctx context.Context, status *leave.Status) ([]*leave.LeaveResponse, error) {
	rows, err := s.LeaveRepository.ListAll(ctx, status)
	if err != nil {
		return nil, err
	}
	return s.toResponses(rows), nil
}

// Decide implements leave.LeaveService. Deciding is one-shot; a decided
// request never goes back to pending.
func (s *LeaveServiceImpl) Decide(ctx context.Context, id int64, req *leave.DecideLeaveRequest) (*leave.LeaveResponse, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, errs
	}

	var decided *leave.Leave
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.LeaveRepository.UpdateStatus(txCtx, id, req.Status); err != nil {
			return err
		}

		var err error
		decided, err = s.LeaveRepository.GetByID(txCtx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return leave.ToLeaveResponse(decided, s.fileService.URLFor), nil
}

func (s *LeaveServiceImpl) toResponses(rows []*leave.Leave) []*leave.LeaveResponse {
	responses := make([]*leave.LeaveResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, leave.ToLeaveResponse(row, s.fileService.URLFor))
	}
	return responses
}
