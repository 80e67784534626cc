package engine

import (
	"ferias-engine/internal/currency"
	"ferias-engine/internal/model"
)

// Format renders every monetary field of r as a BRL string, keyed like the
// JSON fields of model.CalculationResult.
func Format(r *model.CalculationResult) map[string]string {
	amounts := map[string]float64{
		"daily_rate":                r.DailyRate,
		"vacation_value":            r.VacationValue,
		"constitutional_addition":   r.ConstitutionalAddition,
		"taxable_vacation_subtotal": r.TaxableVacationSubtotal,
		"bonus_value":               r.BonusValue,
		"bonus_addition":            r.BonusAddition,
		"exempt_bonus_subtotal":     r.ExemptBonusSubtotal,
		"thirteenth_advance":        r.ThirteenthAdvance,
		"plr_gross":                 r.PLRGross,
		"inss_withheld":             r.INSSWithheld,
		"irrf_withheld":             r.IRRFWithheld,
		"irrf_plr":                  r.IRRFPLR,
		"plr_net":                   r.PLRNet,
		"total_gross_vacation":      r.TotalGrossVacation,
		"total_gross":               r.TotalGross,
		"total_deductions":          r.TotalDeductions,
		"total_net":                 r.TotalNet,
	}

	out := make(map[string]string, len(amounts))
	for k, v := range amounts {
		out[k] = currency.FormatBRL(v)
	}
	return out
}
