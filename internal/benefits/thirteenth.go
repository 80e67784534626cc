package benefits

import "ferias-engine/internal/model"

// ThirteenthAdvanceShare is the part of the 13th salary paid with vacation.
const ThirteenthAdvanceShare = 0.5

// ThirteenthAdvanceHandler pays the first 13th installment, withheld only
// when the second installment is paid.
type ThirteenthAdvanceHandler struct{}

func (h *ThirteenthAdvanceHandler) Name() string { return "thirteenth_advance" }

func (h *ThirteenthAdvanceHandler) Applies(in *model.Inputs) bool { return in.Advance13thRequested }

func (h *ThirteenthAdvanceHandler) Apply(in *model.Inputs, b *model.Breakdown) {
	b.ThirteenthAdvance = in.GrossSalary * ThirteenthAdvanceShare
}
