package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	reporterrors "github.com/pedrodese/Check-Time/internal/report/errors"
	"github.com/pedrodese/Check-Time/internal/shared/apperror"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

var exportHeader = []string{
	"Employee Name",
	"Record Type",
	"Date",
	"Time",
	"Recorded At",
}

// Artifact points at a finished report file on disk.
type Artifact struct {
	FileName string
	FilePath string
}

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	GenerateReport(ctx context.Context, startDate, endDate, format string) (Artifact, error)
}

type service struct {
	repo   Repository
	dir    string
	logger *zap.Logger
	group  singleflight.Group
}

func NewService(repo Repository, dir string, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{repo: repo, dir: dir, logger: l}
}

// GenerateReport loads every punch in [startDate, endDate] (end date
// inclusive to its last millisecond) joined with user names, in
// insertion order, and writes the file under the reports directory.
// Concurrent requests for the same range and format share one write.
func (s *service) GenerateReport(ctx context.Context, startDate, endDate, format string) (Artifact, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return Artifact{}, reporterrors.ErrInvalidRange
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return Artifact{}, reporterrors.ErrInvalidRange
	}
	if end.Before(start) {
		return Artifact{}, reporterrors.ErrInvalidRange
	}

	if format == "" {
		format = FormatCSV
	}
	if format != FormatCSV && format != FormatXLSX {
		return Artifact{}, reporterrors.ErrInvalidFormat
	}

	// Inclusive end-day semantics.
	end = time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, int(999*time.Millisecond), end.Location())

	key := fmt.Sprintf("%s_%s_%s", startDate, endDate, format)
	result, err, _ := s.group.Do(key, func() (any, error) {
		return s.generate(ctx, start, end, startDate, endDate, format)
	})
	if err != nil {
		return Artifact{}, err
	}

	return result.(Artifact), nil
}

func (s *service) generate(ctx context.Context, start, end time.Time, startDate, endDate, format string) (Artifact, error) {
	rows, err := s.repo.FindInRange(ctx, start, end)
	if err != nil {
		s.logger.Error("report query failed", zap.Error(err))
		return Artifact{}, err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.logger.Error("create report dir failed", zap.String("dir", s.dir), zap.Error(err))
		return Artifact{}, apperror.Wrap(err, apperror.CodeExportFailed, "Failed to generate the report file", 500)
	}

	fileName := fmt.Sprintf("report_%s_%s.%s", startDate, endDate, format)
	filePath := filepath.Join(s.dir, fileName)

	switch format {
	case FormatXLSX:
		err = s.writeXLSX(filePath, rows)
	default:
		err = s.writeCSV(filePath, rows)
	}
	if err != nil {
		s.logger.Error("report write failed", zap.String("file", fileName), zap.Error(err))
		return Artifact{}, apperror.Wrap(err, apperror.CodeExportFailed, "Failed to generate the report file", 500)
	}

	s.logger.Info("report generated",
		zap.String("file", fileName),
		zap.Int("rows", len(rows)),
	)
	return Artifact{FileName: fileName, FilePath: filePath}, nil
}

// writeCSV stages the file next to its final path and renames only on
// success, so a failed export never surfaces a half-written artifact.
func (s *service) writeCSV(filePath string, rows []Row) error {
	tmp, err := os.CreateTemp(s.dir, filepath.Base(filePath)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(exportHeader); err != nil {
		tmp.Close()
		return err
	}
	for _, row := range rows {
		if err := w.Write(projectRow(row)); err != nil {
			tmp.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), filePath)
}

func (s *service) writeXLSX(filePath string, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return err
		}
	}

	for rowIdx, row := range rows {
		for colIdx, value := range projectRow(row) {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	tmp, err := os.CreateTemp(s.dir, filepath.Base(filePath)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpName)

	if err := f.SaveAs(tmpName); err != nil {
		return err
	}

	return os.Rename(tmpName, filePath)
}

func projectRow(row Row) []string {
	return []string{
		row.EmployeeName,
		row.Type,
		row.Date.Format("02/01/2006"),
		row.Time,
		row.CreatedAt.Format("02/01/2006 15:04:05"),
	}
}
