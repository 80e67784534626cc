package benefits

import "ferias-engine/internal/model"

// registry is ordered: later handlers rely on the daily rate set by vacation.
var registry = []Handler{
	&VacationHandler{},
	&AbonoHandler{},
	&ThirteenthAdvanceHandler{},
	&PLRHandler{},
}

// Compute runs every applicable handler over validated inputs. Benefits that
// do not apply are left at zero.
func Compute(in model.Inputs) model.Breakdown {
	var b model.Breakdown
	for _, h := range registry {
		if h.Applies(&in) {
			h.Apply(&in, &b)
		}
	}
	return b
}
