package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"loadhaul/internal/domain"
	"loadhaul/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// StatementService renders the monthly earnings statement PDF shown on the
// analytics screen's export button.
type StatementService struct {
	RequestID string
}

// MonthlyStatement builds a one-page PDF for the given summary. Period is a
// free-form label like "2026-08"; empty defaults to the current month.
func (s StatementService) MonthlyStatement(summary domain.MonthlySummary, period string) ([]byte, string, error) {
	period = strings.TrimSpace(period)
	if period == "" {
		period = time.Now().Format("2006-01")
	}
	utils.LogEvent(s.RequestID, "statement", "generate_monthly", "period="+period)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Monthly Earnings Statement", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "MONTHLY EARNINGS STATEMENT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Period          : %s", period),
		fmt.Sprintf("Loads completed : %d", summary.Loads),
		fmt.Sprintf("Total miles     : %.1f", summary.TotalMiles),
		fmt.Sprintf("Gross revenue   : %s", utils.FormatUSD(summary.GrossUSD)),
		fmt.Sprintf("Fuel cost       : %s", utils.FormatUSD(summary.FuelCostUSD)),
		fmt.Sprintf("Platform fees   : %s", utils.FormatUSD(summary.PlatformFeeUSD)),
		fmt.Sprintf("Net earnings    : %s", utils.FormatUSD(summary.NetUSD)),
		fmt.Sprintf("Avg net / mile  : %s", utils.FormatUSD(summary.AvgNetPerMileUSD)),
		fmt.Sprintf("Profit margin   : %s%%", utils.FormatMoney(summary.ProfitMarginPct)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Figures are estimates derived from posted rates and modeled fuel consumption. Generated "+time.Now().Format("2006-01-02 15:04")+".", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("STATEMENT_%s.pdf", strings.ReplaceAll(period, " ", "_"))
	return buf.Bytes(), filename, nil
}
