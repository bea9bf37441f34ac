package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/liupeizhou/coffee-pos/internal/domain/repository"
	"github.com/liupeizhou/coffee-pos/pkg/apperror"
	"github.com/liupeizhou/coffee-pos/pkg/export"
	"github.com/xuri/excelize/v2"
)

// ExportService renders daily and monthly report workbooks to disk
type ExportService struct {
	reportRepo repository.ReportRepository
	orderRepo  repository.OrderRepository
	dir        string
}

// NewExportService creates a new export service writing workbooks under dir
func NewExportService(reportRepo repository.ReportRepository, orderRepo repository.OrderRepository, dir string) *ExportService {
	return &ExportService{
		reportRepo: reportRepo,
		orderRepo:  orderRepo,
		dir:        dir,
	}
}

// ExportDaily writes the one-day workbook and returns its path. The day's
// headline totals, payment breakdown, order detail and product sales all
// come from the live ledger, not the summary cache.
func (s *ExportService) ExportDaily(ctx context.Context, date string) (string, error) {
	if err := validateDate(date); err != nil {
		return "", err
	}

	totals, err := s.reportRepo.DayTotals(ctx, date)
	if err != nil {
		return "", err
	}
	payments, err := s.reportRepo.PaymentBreakdown(ctx, date)
	if err != nil {
		return "", err
	}
	orders, err := s.orderRepo.ListByDate(ctx, date)
	if err != nil {
		return "", err
	}
	products, err := s.reportRepo.ProductSales(ctx, date, date)
	if err != nil {
		return "", err
	}

	report := &export.DailyReport{
		Date:       date,
		OrderCount: totals.OrderCount,
		Subtotal:   totals.Subtotal,
		Discount:   totals.Discount,
		Total:      totals.Total,
	}
	for _, p := range payments {
		report.Payments = append(report.Payments, export.PaymentLine{
			PaymentMethod: p.PaymentMethod,
			OrderCount:    p.OrderCount,
			Total:         p.Total,
		})
	}
	for _, o := range orders {
		method := ""
		if o.PaymentMethod != nil {
			method = *o.PaymentMethod
		}
		report.Orders = append(report.Orders, export.OrderLine{
			OrderNumber:   o.OrderNumber,
			Subtotal:      o.Subtotal,
			Discount:      o.Discount,
			Total:         o.Total,
			PaymentMethod: method,
			CreatedAt:     o.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	for _, p := range products {
		report.Products = append(report.Products, export.ProductLine{
			ProductName:   p.ProductName,
			TotalQuantity: p.TotalQuantity,
			TotalRevenue:  p.TotalRevenue,
		})
	}

	workbook, err := export.BuildDailyWorkbook(report)
	if err != nil {
		return "", err
	}

	return s.save(workbook, export.DailyFileName(date))
}

// ExportMonthly writes the calendar-month workbook and returns its path
func (s *ExportService) ExportMonthly(ctx context.Context, year, month int) (string, error) {
	if year < 2000 || year > 2100 || month < 1 || month > 12 {
		return "", apperror.NewBadRequestError("Invalid year or month")
	}

	startDate := fmt.Sprintf("%04d-%02d-01", year, month)
	// Day 0 of the next month is the last day of this month.
	endDate := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Format("2006-01-02")

	days, err := s.reportRepo.SalesByDay(ctx, startDate, endDate)
	if err != nil {
		return "", err
	}
	products, err := s.reportRepo.ProductSales(ctx, startDate, endDate)
	if err != nil {
		return "", err
	}

	report := &export.MonthlyReport{Year: year, Month: month}
	for _, d := range days {
		report.Days = append(report.Days, export.DailySalesLine{
			Date:       d.Date,
			OrderCount: d.OrderCount,
			Subtotal:   d.Subtotal,
			Discount:   d.Discount,
			Total:      d.Total,
		})
	}
	for _, p := range products {
		report.Products = append(report.Products, export.ProductLine{
			ProductName:   p.ProductName,
			TotalQuantity: p.TotalQuantity,
			TotalRevenue:  p.TotalRevenue,
		})
	}

	workbook, err := export.BuildMonthlyWorkbook(report)
	if err != nil {
		return "", err
	}

	return s.save(workbook, export.MonthlyFileName(year, month))
}

func (s *ExportService) save(workbook *excelize.File, fileName string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(s.dir, fileName)
	if err := workbook.SaveAs(path); err != nil {
		return "", err
	}
	return path, nil
}
