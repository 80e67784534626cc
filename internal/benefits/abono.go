package benefits

import "ferias-engine/internal/model"

// AbonoHandler converts sold vacation days into cash. The abono and its
// one-third are exempt from INSS and IRRF.
type AbonoHandler struct{}

func (h *AbonoHandler) Name() string { return "abono" }

func (h *AbonoHandler) Applies(in *model.Inputs) bool { return in.VacationDaysSold > 0 }

func (h *AbonoHandler) Apply(in *model.Inputs, b *model.Breakdown) {
	b.DaysSold = in.VacationDaysSold
	b.BonusValue = b.DailyRate * float64(in.VacationDaysSold)
	b.BonusAddition = b.BonusValue / 3
	b.ExemptBonusSubtotal = b.BonusValue + b.BonusAddition
}
