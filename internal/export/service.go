package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/rightsledger/rights-parser/internal/repository"
)

// Service produces XLSX bytes for usage exports.
type Service struct {
	usageRepo repository.UsageLogRepository
	logger    *slog.Logger
}

func NewService(usageRepo repository.UsageLogRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{usageRepo: usageRepo, logger: logger}
}

// ExportUsageXLSX returns an XLSX workbook (as bytes) for the given API key
// and date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all usage rows for the key.
func (s *Service) ExportUsageXLSX(ctx context.Context, apiKeyID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}

	logs, err := s.usageRepo.ListForKey(ctx, apiKeyID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query usage logs: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Usage"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Timestamp",
		"Endpoint",
		"Method",
		"Status",
		"Latency (ms)",
		"File Size",
		"Client IP",
		"Job ID",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, l := range logs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, l.CreatedAt.UTC().Format(time.RFC3339))
		write(2, l.Endpoint)
		write(3, l.Method)
		write(4, l.StatusCode)
		write(5, l.LatencyMs)
		write(6, l.FileSize)
		write(7, l.ClientIP)
		if l.JobID != nil {
			write(8, l.JobID.String())
		} else {
			write(8, "")
		}

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 22) // timestamp
	_ = f.SetColWidth(sheet, "B", "B", 28) // endpoint
	_ = f.SetColWidth(sheet, "C", "D", 10) // method, status
	_ = f.SetColWidth(sheet, "E", "F", 14) // latency, size
	_ = f.SetColWidth(sheet, "G", "G", 18) // client ip
	_ = f.SetColWidth(sheet, "H", "H", 38) // job id

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"api_key_id", apiKeyID.String(),
		"rows", len(logs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
