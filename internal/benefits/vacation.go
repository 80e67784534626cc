// Package benefits derives the gross amounts owed for vacation, sold days,
// the 13th salary advance and profit sharing. Nothing here is rounded.
package benefits

import "ferias-engine/internal/model"

// DaysPerMonth is the CLT commercial month used for the daily rate.
const DaysPerMonth = 30

// VacationHandler computes the days of rest actually taken plus the
// constitutional one-third. This is the taxable part of the vacation.
type VacationHandler struct{}

func (h *VacationHandler) Name() string { return "vacation" }

func (h *VacationHandler) Applies(in *model.Inputs) bool { return true }

func (h *VacationHandler) Apply(in *model.Inputs, b *model.Breakdown) {
	b.DailyRate = in.GrossSalary / DaysPerMonth
	b.DaysTaken = in.VacationDaysTaken
	b.VacationValue = b.DailyRate * float64(in.VacationDaysTaken)
	b.ConstitutionalAddition = b.VacationValue / 3
	b.TaxableVacationSubtotal = b.VacationValue + b.ConstitutionalAddition
}
