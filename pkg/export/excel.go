package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// PaymentLine is one payment-method row on the daily summary sheet
type PaymentLine struct {
	PaymentMethod string
	OrderCount    int
	Total         float64
}

// OrderLine is one order row on the daily detail sheet
type OrderLine struct {
	OrderNumber   string
	Subtotal      float64
	Discount      float64
	Total         float64
	PaymentMethod string
	CreatedAt     string
}

// ProductLine is one product row on the product sales sheet
type ProductLine struct {
	ProductName   string
	TotalQuantity int
	TotalRevenue  float64
}

// DailyReport is the data behind a one-day workbook
type DailyReport struct {
	Date       string
	OrderCount int
	Subtotal   float64
	Discount   float64
	Total      float64
	Payments   []PaymentLine
	Orders     []OrderLine
	Products   []ProductLine
}

// DailySalesLine is one day row on the monthly summary sheet
type DailySalesLine struct {
	Date       string
	OrderCount int
	Subtotal   float64
	Discount   float64
	Total      float64
}

// MonthlyReport is the data behind a one-month workbook
type MonthlyReport struct {
	Year     int
	Month    int
	Days     []DailySalesLine
	Products []ProductLine
}

// BuildDailyWorkbook renders a daily report workbook with summary, order
// detail and product sales sheets
func BuildDailyWorkbook(report *DailyReport) (*excelize.File, error) {
	f := excelize.NewFile()

	summary := [][]any{
		{"日期", report.Date},
		{"总订单数", report.OrderCount},
		{"小计", report.Subtotal},
		{"优惠", report.Discount},
		{"总计", report.Total},
		{},
		{"支付方式分布"},
	}
	for _, p := range report.Payments {
		method := p.PaymentMethod
		if method == "" {
			method = "未知"
		}
		summary = append(summary, []any{method, fmt.Sprintf("%d单，¥%v", p.OrderCount, p.Total)})
	}
	if err := writeSheet(f, "汇总", summary); err != nil {
		return nil, err
	}

	orders := [][]any{{"订单号", "小计", "优惠", "总计", "支付方式", "时间"}}
	for _, o := range report.Orders {
		orders = append(orders, []any{o.OrderNumber, o.Subtotal, o.Discount, o.Total, o.PaymentMethod, o.CreatedAt})
	}
	if err := writeSheet(f, "订单明细", orders); err != nil {
		return nil, err
	}

	if err := writeSheet(f, "产品销量", productRows(report.Products)); err != nil {
		return nil, err
	}

	return f, nil
}

// BuildMonthlyWorkbook renders a monthly report workbook with per-day
// summary and product sales sheets
func BuildMonthlyWorkbook(report *MonthlyReport) (*excelize.File, error) {
	f := excelize.NewFile()

	days := [][]any{{"日期", "订单数", "小计", "优惠", "总计"}}
	for _, d := range report.Days {
		days = append(days, []any{d.Date, d.OrderCount, d.Subtotal, d.Discount, d.Total})
	}
	if err := writeSheet(f, "每日汇总", days); err != nil {
		return nil, err
	}

	if err := writeSheet(f, "产品销量", productRows(report.Products)); err != nil {
		return nil, err
	}

	return f, nil
}

// DailyFileName returns the canonical file name for a daily workbook
func DailyFileName(date string) string {
	return fmt.Sprintf("日报表_%s.xlsx", date)
}

// MonthlyFileName returns the canonical file name for a monthly workbook
func MonthlyFileName(year, month int) string {
	return fmt.Sprintf("月报表_%d_%d.xlsx", year, month)
}

func productRows(products []ProductLine) [][]any {
	rows := [][]any{{"产品名称", "销售数量", "销售额"}}
	for _, p := range products {
		rows = append(rows, []any{p.ProductName, p.TotalQuantity, p.TotalRevenue})
	}
	return rows
}

// writeSheet appends one sheet, replacing the workbook's default sheet on
// first use so no empty Sheet1 remains
func writeSheet(f *excelize.File, name string, rows [][]any) error {
	if f.SheetCount == 1 && f.GetSheetName(0) == "Sheet1" {
		if err := f.SetSheetName("Sheet1", name); err != nil {
			return err
		}
	} else if _, err := f.NewSheet(name); err != nil {
		return err
	}

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return err
		}
	}

	return nil
}
