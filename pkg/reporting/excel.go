package reporting

import (
	"fmt"

	"github.com/btclab/btc-accumulator/internal/backtest"
	"github.com/xuri/excelize/v2"
)

// DefaultExcelReporter implements XLSX workbook output.
type DefaultExcelReporter struct{}

// NewDefaultExcelReporter creates a new Excel reporter
func NewDefaultExcelReporter() *DefaultExcelReporter {
	return &DefaultExcelReporter{}
}

// WriteWorkbookXLSX writes a workbook with Summary, Purchases and Equity
// sheets for one run.
func (r *DefaultExcelReporter) WriteWorkbookXLSX(summary backtest.Summary, state *backtest.EngineState, path string) error {
	if err := EnsureDirectoryExists(path); err != nil {
		return err
	}

	fx := excelize.NewFile()
	defer fx.Close()

	headerStyle, err := fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	if err := r.writeSummarySheet(fx, summary, headerStyle); err != nil {
		return err
	}
	if err := r.writePurchasesSheet(fx, state, headerStyle); err != nil {
		return err
	}
	if err := r.writeEquitySheet(fx, state, headerStyle); err != nil {
		return err
	}

	index, err := fx.GetSheetIndex("Summary")
	if err != nil {
		return err
	}
	fx.SetActiveSheet(index)

	return fx.SaveAs(path)
}

func (r *DefaultExcelReporter) writeSummarySheet(fx *excelize.File, summary backtest.Summary, headerStyle int) error {
	const sheet = "Summary"
	if err := fx.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	returnValue := "n/a"
	if summary.HasReturn {
		returnValue = fmt.Sprintf("%.2f%%", summary.ReturnPercent)
	}

	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Strategy", summary.StrategyName},
		{"Daily Budget", summary.DailyBudget},
		{"Days Processed", summary.Days},
		{"Purchases", summary.PurchaseCount},
		{"Total Invested", summary.TotalSpent},
		{"Cash Reserve", summary.CashReserve},
		{"BTC Accumulated", summary.BTCHoldings},
		{"Average Purchase Price", summary.AveragePurchasePrice},
		{"Final BTC Price", summary.FinalPrice},
		{"Portfolio Value", summary.PortfolioValue},
		{"Return", returnValue},
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := fx.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	if err := fx.SetCellStyle(sheet, "A1", "B1", headerStyle); err != nil {
		return err
	}
	return fx.SetColWidth(sheet, "A", "B", 24)
}

func (r *DefaultExcelReporter) writePurchasesSheet(fx *excelize.File, state *backtest.EngineState, headerStyle int) error {
	const sheet = "Purchases"
	if _, err := fx.NewSheet(sheet); err != nil {
		return err
	}

	header := []interface{}{"Date", "Price", "Amount Spent", "BTC Acquired", "Reason"}
	if err := fx.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	if err := fx.SetCellStyle(sheet, "A1", "E1", headerStyle); err != nil {
		return err
	}

	for i, p := range state.Purchases {
		row := []interface{}{
			p.Date.Format("2006-01-02"),
			p.Price,
			p.AmountSpent,
			p.BTCAcquired,
			p.Reason,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := fx.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return fx.SetColWidth(sheet, "A", "E", 16)
}

func (r *DefaultExcelReporter) writeEquitySheet(fx *excelize.File, state *backtest.EngineState, headerStyle int) error {
	const sheet = "Equity"
	if _, err := fx.NewSheet(sheet); err != nil {
		return err
	}

	header := []interface{}{"Date", "Close", "Portfolio Value", "Total Spent", "Cash Reserve"}
	if err := fx.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	if err := fx.SetCellStyle(sheet, "A1", "E1", headerStyle); err != nil {
		return err
	}

	for i, point := range state.Equity {
		row := []interface{}{
			point.Date.Format("2006-01-02"),
			point.Close,
			point.PortfolioValue,
			point.TotalSpent,
			point.CashReserve,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := fx.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return fx.SetColWidth(sheet, "A", "E", 16)
}
