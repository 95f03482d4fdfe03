package report

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	reporterrors "github.com/pedrodese/Check-Time/internal/report/errors"

	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	findInRangeFn func(ctx context.Context, start, end time.Time) ([]Row, error)
}

func (f *fakeRepo) FindInRange(ctx context.Context, start, end time.Time) ([]Row, error) {
	return f.findInRangeFn(ctx, start, end)
}

func TestService_GenerateReport_CSV(t *testing.T) {
	dir := t.TempDir()

	created := time.Date(2026, 8, 10, 8, 2, 30, 0, time.UTC)
	repo := &fakeRepo{
		findInRangeFn: func(ctx context.Context, start, end time.Time) ([]Row, error) {
			// single-day range still spans the whole end day
			assert.Equal(t, "2026-08-10 00:00:00", start.Format("2006-01-02 15:04:05"))
			assert.Equal(t, "2026-08-10 23:59:59", end.Format("2006-01-02 15:04:05"))
			return []Row{
				{EmployeeName: "Ana Souza", Type: "MORNING_ENTRY", Date: created, Time: "08:02", CreatedAt: created},
				{EmployeeName: "Ana Souza", Type: "MORNING_EXIT", Date: created, Time: "12:01", CreatedAt: created.Add(4 * time.Hour)},
			}, nil
		},
	}

	svc := NewService(repo, dir)
	artifact, err := svc.GenerateReport(context.Background(), "2026-08-10", "2026-08-10", "csv")
	assert.NoError(t, err)
	assert.Equal(t, "report_2026-08-10_2026-08-10.csv", artifact.FileName)

	f, err := os.Open(artifact.FilePath)
	assert.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, exportHeader, records[0])
	assert.Equal(t, []string{"Ana Souza", "MORNING_ENTRY", "10/08/2026", "08:02", "10/08/2026 08:02:30"}, records[1])
	assert.Equal(t, "MORNING_EXIT", records[2][1])
}

func TestService_GenerateReport_EmptyRange(t *testing.T) {
	dir := t.TempDir()

	repo := &fakeRepo{
		findInRangeFn: func(ctx context.Context, start, end time.Time) ([]Row, error) {
			return nil, nil
		},
	}

	svc := NewService(repo, dir)
	artifact, err := svc.GenerateReport(context.Background(), "2026-08-01", "2026-08-31", "")
	assert.NoError(t, err)

	f, err := os.Open(artifact.FilePath)
	assert.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 1) // header only
}

func TestService_GenerateReport_InvalidInput(t *testing.T) {
	svc := NewService(&fakeRepo{}, t.TempDir())

	_, err := svc.GenerateReport(context.Background(), "08-01-2026", "2026-08-31", "csv")
	assert.ErrorIs(t, err, reporterrors.ErrInvalidRange)

	_, err = svc.GenerateReport(context.Background(), "2026-08-31", "2026-08-01", "csv")
	assert.ErrorIs(t, err, reporterrors.ErrInvalidRange)

	_, err = svc.GenerateReport(context.Background(), "2026-08-01", "2026-08-31", "pdf")
	assert.ErrorIs(t, err, reporterrors.ErrInvalidFormat)
}

func TestService_GenerateReport_QueryFailure(t *testing.T) {
	repo := &fakeRepo{
		findInRangeFn: func(ctx context.Context, start, end time.Time) ([]Row, error) {
			return nil, errors.New("relation does not exist")
		},
	}

	svc := NewService(repo, t.TempDir())
	_, err := svc.GenerateReport(context.Background(), "2026-08-01", "2026-08-31", "csv")
	assert.Error(t, err)
}

func TestService_GenerateReport_XLSX(t *testing.T) {
	dir := t.TempDir()

	repo := &fakeRepo{
		findInRangeFn: func(ctx context.Context, start, end time.Time) ([]Row, error) {
			now := time.Date(2026, 8, 10, 14, 0, 5, 0, time.UTC)
			return []Row{{EmployeeName: "Bruno Lima", Type: "AFTERNOON_ENTRY", Date: now, Time: "14:00", CreatedAt: now}}, nil
		},
	}

	svc := NewService(repo, dir)
	artifact, err := svc.GenerateReport(context.Background(), "2026-08-10", "2026-08-10", "xlsx")
	assert.NoError(t, err)
	assert.Equal(t, "report_2026-08-10_2026-08-10.xlsx", artifact.FileName)

	info, err := os.Stat(artifact.FilePath)
	assert.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	// staging temp files are cleaned up either way
	leftovers, _ := filepath.Glob(filepath.Join(dir, "*.tmp-*"))
	assert.Empty(t, leftovers)
}
