// Package tax holds the progressive withholding functions used on vacation
// pay and profit sharing.
package tax

// ComputeINSS returns the employee social security contribution on base.
// Every bracket's rate applies only to the part of base that falls inside it,
// and base is capped at INSSCeiling first.
func ComputeINSS(base float64) float64 {
	if base <= 0 {
		return 0
	}
	if base > INSSCeiling {
		base = INSSCeiling
	}

	var inss, lower float64
	for _, b := range INSSTable {
		if base <= b.UpperBound {
			inss += (base - lower) * b.Rate
			break
		}
		inss += (b.UpperBound - lower) * b.Rate
		lower = b.UpperBound
	}
	return inss
}

// ComputeIRRF returns the monthly income tax withheld on base, never negative.
func ComputeIRRF(base float64) float64 {
	if base <= 0 {
		return 0
	}
	return rateMinusDeduction(IRRFTable, base)
}

// ComputeIRRFPLR returns the income tax withheld on a profit sharing payment.
// It uses its own table and is never combined with the monthly base.
func ComputeIRRFPLR(amount float64) float64 {
	return rateMinusDeduction(PLRTable, amount)
}

func rateMinusDeduction(table []Bracket, v float64) float64 {
	b := lookup(table, v)
	tax := v*b.Rate - b.Deduction
	if tax < 0 {
		return 0
	}
	return tax
}
