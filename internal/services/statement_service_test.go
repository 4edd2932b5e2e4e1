package services

import (
	"bytes"
	"testing"

	"loadhaul/internal/domain"
)

func TestMonthlyStatement(t *testing.T) {
	svc := StatementService{}
	summary := domain.MonthlySummary{
		Loads:            4,
		GrossUSD:         7200,
		FuelCostUSD:      640.50,
		PlatformFeeUSD:   216,
		NetUSD:           6343.50,
		TotalMiles:       950,
		AvgNetPerMileUSD: 6.68,
		ProfitMarginPct:  88.10,
	}

	pdf, filename, err := svc.MonthlyStatement(summary, "2026-08")
	if err != nil {
		t.Fatalf("statement: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF")
	}
	if filename != "STATEMENT_2026-08.pdf" {
		t.Fatalf("filename = %q", filename)
	}
}

func TestMonthlyStatementDefaultPeriod(t *testing.T) {
	svc := StatementService{}
	pdf, filename, err := svc.MonthlyStatement(domain.MonthlySummary{}, "")
	if err != nil {
		t.Fatalf("statement: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatal("empty PDF")
	}
	if filename == "STATEMENT_.pdf" {
		t.Fatalf("period default not applied: %q", filename)
	}
}
