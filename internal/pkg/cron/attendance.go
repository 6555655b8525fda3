package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hunarmand-punjab/erp-backend-go/internal/domain/attendance"
)

type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
}

func NewAttendanceJobs(attendanceRepo attendance.AttendanceRepository) *AttendanceJobs {
	return &AttendanceJobs{attendanceRepo: attendanceRepo}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees backfills an absent record for every active employee
// who did not clock in yesterday. The insert skips dates that already have a
// record, so running twice is harmless.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting mark absent employees job")

	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	date := time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 0, 0, 0, 0, time.UTC)

	count, err := j.attendanceRepo.MarkAbsentees(ctx, date)
	if err != nil {
		return fmt.Errorf("failed to mark absentees: %w", err)
	}

	slog.Info("Cron: Marked absent employees", "count", count, "date", date.Format("2006-01-02"))
	return nil
}
