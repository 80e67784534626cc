package benefits

import "ferias-engine/internal/model"

type PLRHandler struct{}

func (h *PLRHandler) Name() string { return "plr" }

func (h *PLRHandler) Applies(in *model.Inputs) bool { return in.IncludePLR }

func (h *PLRHandler) Apply(in *model.Inputs, b *model.Breakdown) {
	b.PLRGross = in.GrossSalary * (in.PLRPercentage / 100)
}
