package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDailyWorkbook(t *testing.T) {
	f, err := BuildDailyWorkbook(&DailyReport{
		Date:       "2024-05-10",
		OrderCount: 2,
		Subtotal:   80,
		Total:      80,
		Payments: []PaymentLine{
			{PaymentMethod: "现金", OrderCount: 1, Total: 50},
			{PaymentMethod: "", OrderCount: 1, Total: 30},
		},
		Orders: []OrderLine{
			{OrderNumber: "ORD1", Subtotal: 50, Total: 50, PaymentMethod: "现金", CreatedAt: "2024-05-10 12:00:00"},
		},
		Products: []ProductLine{
			{ProductName: "美式咖啡", TotalQuantity: 2, TotalRevenue: 50},
		},
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"汇总", "订单明细", "产品销量"}, f.GetSheetList())

	date, err := f.GetCellValue("汇总", "B1")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-10", date)

	// Unattributed payments are labelled 未知.
	unknown, err := f.GetCellValue("汇总", "A9")
	require.NoError(t, err)
	assert.Equal(t, "未知", unknown)

	cash, err := f.GetCellValue("汇总", "B8")
	require.NoError(t, err)
	assert.Equal(t, "1单，¥50", cash)

	orderNumber, err := f.GetCellValue("订单明细", "A2")
	require.NoError(t, err)
	assert.Equal(t, "ORD1", orderNumber)

	product, err := f.GetCellValue("产品销量", "A2")
	require.NoError(t, err)
	assert.Equal(t, "美式咖啡", product)
}

func TestBuildMonthlyWorkbook(t *testing.T) {
	f, err := BuildMonthlyWorkbook(&MonthlyReport{
		Year:  2024,
		Month: 5,
		Days: []DailySalesLine{
			{Date: "2024-05-10", OrderCount: 2, Subtotal: 80, Total: 80},
		},
		Products: []ProductLine{
			{ProductName: "拿铁", TotalQuantity: 3, TotalRevenue: 54},
		},
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"每日汇总", "产品销量"}, f.GetSheetList())

	date, err := f.GetCellValue("每日汇总", "A2")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-10", date)
}

func TestFileNames(t *testing.T) {
	assert.Equal(t, "日报表_2024-05-10.xlsx", DailyFileName("2024-05-10"))
	assert.Equal(t, "月报表_2024_5.xlsx", MonthlyFileName(2024, 5))
}
