package services

import (
	"context"
	"sort"
	"time"

	"github.com/CarlJazper/PSPWeb-AdminBack/internal/gymapi"
	"github.com/CarlJazper/PSPWeb-AdminBack/internal/models"
	"github.com/CarlJazper/PSPWeb-AdminBack/internal/report"
)

type reportBackend interface {
	GetAllLogs(ctx context.Context, q gymapi.RecordQuery) ([]models.AttendanceLog, error)
	GetAllTransactions(ctx context.Context, q gymapi.RecordQuery) ([]models.Transaction, error)
	GetAllUsers(ctx context.Context, branchID string) ([]models.User, error)
	GetAllTrainingSessions(ctx context.Context, branchID string) ([]models.TrainingSession, error)
}

// ReportService runs every reporting pipeline the dashboard shows: fetch a
// collection from the backend, drop invalid records, optionally window by
// date, bucket, and hand the series to the caller. All views share these
// methods; none keeps its own copy of the logic.
type ReportService struct {
	backend reportBackend
	now     func() time.Time
}

func NewReportService(backend reportBackend) *ReportService {
	return &ReportService{
		backend: backend,
		now:     time.Now,
	}
}

// MembershipSales sums membership transactions into the twelve calendar
// months of the given year.
func (s *ReportService) MembershipSales(ctx context.Context, branchID string, year int) ([]report.Bucket[string], error) {
	transactions, err := s.backend.GetAllTransactions(ctx, gymapi.RecordQuery{BranchID: branchID})
	if err != nil {
		return nil, err
	}

	return report.MonthlySeries(transactions, year,
		func(tx models.Transaction) (time.Time, bool) {
			return tx.SubscribedDate, !tx.SubscribedDate.IsZero()
		},
		func(tx models.Transaction) float64 { return tx.Amount },
	), nil
}

// SessionSales sums personal-training package totals per calendar month.
func (s *ReportService) SessionSales(ctx context.Context, branchID string, year int) ([]report.Bucket[string], error) {
	sessions, err := s.backend.GetAllTrainingSessions(ctx, branchID)
	if err != nil {
		return nil, err
	}

	return report.MonthlySeries(sessions, year,
		func(ts models.TrainingSession) (time.Time, bool) {
			return ts.CreatedAt, !ts.CreatedAt.IsZero()
		},
		func(ts models.TrainingSession) float64 { return ts.Total },
	), nil
}

// TrainingUsage counts booked training sessions per package type.
func (s *ReportService) TrainingUsage(ctx context.Context, branchID string) ([]report.Bucket[string], error) {
	sessions, err := s.backend.GetAllTrainingSessions(ctx, branchID)
	if err != nil {
		return nil, err
	}

	return report.Aggregate(sessions,
		func(ts models.TrainingSession) (string, bool) {
			return ts.Package, ts.Package != ""
		},
		report.Count[models.TrainingSession],
	), nil
}

// AgeDemographics buckets active members into age brackets. Soft-deleted
// users and users without a birth date are excluded, never shown as their
// own bucket.
func (s *ReportService) AgeDemographics(ctx context.Context, branchID string) ([]report.Bucket[string], error) {
	users, err := s.backend.GetAllUsers(ctx, branchID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	return report.Aggregate(users,
		func(u models.User) (string, bool) {
			if u.IsDeleted || u.BirthDate.IsZero() {
				return "", false
			}
			return report.AgeBracket(u.BirthDate, now), true
		},
		report.Count[models.User],
	), nil
}

// GenderBreakdown counts active members per gender.
func (s *ReportService) GenderBreakdown(ctx context.Context, branchID string) ([]report.Bucket[string], error) {
	users, err := s.backend.GetAllUsers(ctx, branchID)
	if err != nil {
		return nil, err
	}

	return report.Aggregate(users,
		func(u models.User) (string, bool) {
			return u.Gender, !u.IsDeleted && u.Gender != ""
		},
		report.Count[models.User],
	), nil
}

// DailyAttendance counts valid check-ins per day inside the applied window.
func (s *ReportService) DailyAttendance(ctx context.Context, branchID string, from, to *time.Time) ([]report.Bucket[string], error) {
	logs, err := s.backend.GetAllLogs(ctx, gymapi.RecordQuery{BranchID: branchID, From: from, To: to})
	if err != nil {
		return nil, err
	}

	windowed := report.FilterByDate(validLogs(logs), report.NewDateRange(from, to), logDate)
	return report.Aggregate(windowed,
		func(l models.AttendanceLog) (string, bool) {
			if l.Date == nil {
				return "", false
			}
			return report.DayKey(*l.Date), true
		},
		report.Count[models.AttendanceLog],
	), nil
}

// HourlyCheckIns buckets one day's check-ins by hour of day, sorted for the
// chart axis.
func (s *ReportService) HourlyCheckIns(ctx context.Context, branchID string, day time.Time) ([]report.Bucket[string], error) {
	logs, err := s.backend.GetAllLogs(ctx, gymapi.RecordQuery{BranchID: branchID, From: &day, To: &day})
	if err != nil {
		return nil, err
	}

	window := report.NewDateRange(&day, &day)
	windowed := report.FilterByDate(validLogs(logs), window, func(l models.AttendanceLog) (time.Time, bool) {
		return l.TimeIn, !l.TimeIn.IsZero()
	})

	buckets := report.Aggregate(windowed,
		func(l models.AttendanceLog) (string, bool) {
			return report.HourKey(l.TimeIn), !l.TimeIn.IsZero()
		},
		report.Count[models.AttendanceLog],
	)
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Key < buckets[j].Key })
	return buckets, nil
}

// Occupancy returns the members currently inside: checked in, not yet
// checked out.
func (s *ReportService) Occupancy(ctx context.Context, branchID string) ([]models.AttendanceLog, error) {
	logs, err := s.backend.GetAllLogs(ctx, gymapi.RecordQuery{BranchID: branchID})
	if err != nil {
		return nil, err
	}

	active := make([]models.AttendanceLog, 0, len(logs))
	for _, l := range validLogs(logs) {
		if l.Active() {
			active = append(active, l)
		}
	}
	return active, nil
}

// AttendanceHistory returns the date-windowed logs for the paginated table
// and the exports, newest first left to the backend's ordering.
func (s *ReportService) AttendanceHistory(ctx context.Context, branchID string, from, to *time.Time) ([]models.AttendanceLog, error) {
	logs, err := s.backend.GetAllLogs(ctx, gymapi.RecordQuery{BranchID: branchID, From: from, To: to})
	if err != nil {
		return nil, err
	}
	return report.FilterByDate(validLogs(logs), report.NewDateRange(from, to), logDate), nil
}

// TransactionHistory returns the date-windowed transactions for the table
// and the exports.
func (s *ReportService) TransactionHistory(ctx context.Context, branchID string, from, to *time.Time) ([]models.Transaction, error) {
	transactions, err := s.backend.GetAllTransactions(ctx, gymapi.RecordQuery{BranchID: branchID, From: from, To: to})
	if err != nil {
		return nil, err
	}

	return report.FilterByDate(transactions, report.NewDateRange(from, to),
		func(tx models.Transaction) (time.Time, bool) {
			return tx.SubscribedDate, !tx.SubscribedDate.IsZero()
		},
	), nil
}

func logDate(l models.AttendanceLog) (time.Time, bool) {
	if l.Date == nil {
		return time.Time{}, false
	}
	return *l.Date, true
}

// validLogs drops logs whose member reference is broken or soft-deleted.
// The flag is backend-owned; exclusion is the only honor the read side pays.
func validLogs(logs []models.AttendanceLog) []models.AttendanceLog {
	valid := make([]models.AttendanceLog, 0, len(logs))
	for _, l := range logs {
		if l.UserID == "" {
			continue
		}
		if l.User != nil && l.User.IsDeleted {
			continue
		}
		valid = append(valid, l)
	}
	return valid
}
