package export

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"targetcheck/internal/entity"
)

// Row is one validated document in a batch report.
type Row struct {
	Document string
	Result   entity.ValidationResult
}

// Service produces XLSX bytes summarizing a batch of validation results.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// ReportXLSX returns an XLSX workbook (as bytes) with one row per document.
func (s *Service) ReportXLSX(rows []Row) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Validation"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	defaultIndex, _ := f.GetSheetIndex("Sheet1")
	if defaultIndex != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	headers := []string{
		"Document",
		"Valid",
		"Message",
		"Mismatched Fields",
		"Details",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	rowIdx := 2
	for _, r := range rows {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, rowIdx)
			_ = f.SetCellValue(sheet, cell, v)
		}

		fields := make([]string, 0, len(r.Result.Mismatches))
		details := make([]string, 0, len(r.Result.Mismatches))
		for _, m := range r.Result.Mismatches {
			fields = append(fields, m.Field)
			details = append(details, fmt.Sprintf("%s: expected %q, found %q (%s)", m.Field, m.ExpectedValue, m.PdfValue, m.Reason))
		}

		write(1, r.Document)
		write(2, r.Result.Valid)
		write(3, truncate(r.Result.Message, 140))
		write(4, strings.Join(fields, ", "))
		write(5, truncate(strings.Join(details, "; "), 300))

		rowIdx++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 40) // document
	_ = f.SetColWidth(sheet, "B", "B", 8)  // valid
	_ = f.SetColWidth(sheet, "C", "C", 48) // message
	_ = f.SetColWidth(sheet, "D", "D", 32) // fields
	_ = f.SetColWidth(sheet, "E", "E", 80) // details

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
