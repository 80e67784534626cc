package tax

import "math"

// Bracket is one row of a progressive table. Brackets are kept in ascending
// UpperBound order; the last one is open-ended.
type Bracket struct {
	UpperBound float64
	Rate       float64
	Deduction  float64
}

// INSSCeiling is the contribution ceiling ("teto") for 2024.
const INSSCeiling = 7786.02

// INSSTable is the 2024 progressive employee contribution table. Deduction is
// unused: each rate applies to the slice between the previous bound and this one.
var INSSTable = []Bracket{
	{UpperBound: 1412.00, Rate: 0.075},
	{UpperBound: 2666.68, Rate: 0.09},
	{UpperBound: 4000.03, Rate: 0.12},
	{UpperBound: INSSCeiling, Rate: 0.14},
}

// IRRFTable is the 2024 monthly withholding table, no dependants.
var IRRFTable = []Bracket{
	{UpperBound: 2259.20, Rate: 0, Deduction: 0},
	{UpperBound: 2826.65, Rate: 0.075, Deduction: 169.44},
	{UpperBound: 3751.05, Rate: 0.15, Deduction: 381.44},
	{UpperBound: 4664.68, Rate: 0.225, Deduction: 662.77},
	{UpperBound: math.Inf(1), Rate: 0.275, Deduction: 896.00},
}

// PLRTable is the exclusive 2024 table for profit sharing.
var PLRTable = []Bracket{
	{UpperBound: 7640.80, Rate: 0, Deduction: 0},
	{UpperBound: 9922.28, Rate: 0.075, Deduction: 573.06},
	{UpperBound: 13167.00, Rate: 0.15, Deduction: 1317.23},
	{UpperBound: 16380.38, Rate: 0.225, Deduction: 2304.76},
	{UpperBound: math.Inf(1), Rate: 0.275, Deduction: 3123.78},
}

// lookup returns the first bracket whose upper bound is not exceeded by v,
// falling back to the last one.
func lookup(table []Bracket, v float64) Bracket {
	for _, b := range table {
		if v <= b.UpperBound {
			return b
		}
	}
	return table[len(table)-1]
}
