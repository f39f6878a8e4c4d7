package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"
)

type reportService struct {
	dashboards DashboardService
	logger     *slog.Logger
}

func NewReportService(dashboards DashboardService, logger *slog.Logger) ReportService {
	return &reportService{
		dashboards: dashboards,
		logger:     logger,
	}
}

const attendanceSheet = "Attendance"

// AttendanceWorkbook renders the attendance analytics as an xlsx document
// for the admin analytics export.
func (s *reportService) AttendanceWorkbook(ctx context.Context) ([]byte, error) {
	report, err := s.dashboards.Attendance(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute attendance: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil {
			s.logger.Warn("Failed to close workbook", "error", cerr)
		}
	}()

	if err := f.SetSheetName("Sheet1", attendanceSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headers := []string{"Email", "Name", "Modules %", "Quiz Pass %", "Review Signal", "Attendance", "Status"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(attendanceSheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for rowIdx, row := range report.Rows {
		values := []interface{}{
			row.Email,
			row.Name,
			row.ModulePercent,
			row.PassPercent,
			row.ReviewSignal,
			row.Attendance,
			row.Status,
		}
		for colIdx, value := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, fmt.Errorf("failed to address cell: %w", err)
			}
			if err := f.SetCellValue(attendanceSheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write row: %w", err)
			}
		}
	}

	summaryRow := len(report.Rows) + 3
	summary := [][2]interface{}{
		{"Average Attendance", report.Overview.AverageAttendance},
		{"Excellent", report.Overview.ExcellentCount},
		{"At Risk", report.Overview.RiskCount},
	}
	for i, pair := range summary {
		labelCell, err := excelize.CoordinatesToCellName(1, summaryRow+i)
		if err != nil {
			return nil, fmt.Errorf("failed to address summary cell: %w", err)
		}
		valueCell, err := excelize.CoordinatesToCellName(2, summaryRow+i)
		if err != nil {
			return nil, fmt.Errorf("failed to address summary cell: %w", err)
		}
		if err := f.SetCellValue(attendanceSheet, labelCell, pair[0]); err != nil {
			return nil, fmt.Errorf("failed to write summary: %w", err)
		}
		if err := f.SetCellValue(attendanceSheet, valueCell, pair[1]); err != nil {
			return nil, fmt.Errorf("failed to write summary: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	s.logger.Info("Attendance workbook generated", "rows", len(report.Rows))
	return buf.Bytes(), nil
}
