package benefits

import "ferias-engine/internal/model"

// Handler computes one benefit. Handlers only ever write their own fields of
// the breakdown, except DailyRate which the vacation handler sets first.
type Handler interface {
	Name() string
	Applies(in *model.Inputs) bool
	Apply(in *model.Inputs, b *model.Breakdown)
}
