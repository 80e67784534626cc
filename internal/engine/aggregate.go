package engine

import (
	"ferias-engine/internal/model"
	"ferias-engine/internal/tax"
)

// Aggregate applies withholding to a benefit breakdown and totals it.
// INSS comes off the taxable vacation first and IRRF is taken on what is
// left. PLR is never subject to INSS and only ever meets its own table.
func Aggregate(b model.Breakdown) model.CalculationResult {
	r := model.CalculationResult{Breakdown: b}

	r.INSSWithheld = tax.ComputeINSS(b.TaxableVacationSubtotal)
	r.IRRFWithheld = tax.ComputeIRRF(b.TaxableVacationSubtotal - r.INSSWithheld)
	r.IRRFPLR = tax.ComputeIRRFPLR(b.PLRGross)

	r.TotalGrossVacation = b.TaxableVacationSubtotal + b.ExemptBonusSubtotal
	r.TotalGross = r.TotalGrossVacation + b.ThirteenthAdvance + b.PLRGross
	r.TotalDeductions = r.INSSWithheld + r.IRRFWithheld + r.IRRFPLR
	r.TotalNet = r.TotalGross - r.TotalDeductions
	r.PLRNet = b.PLRGross - r.IRRFPLR
	return r
}
