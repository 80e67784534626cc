package model

// Breakdown holds the benefit amounts before any withholding. Amounts for
// options that are switched off stay at zero.
type Breakdown struct {
	DaysTaken int `json:"days_taken"`
	DaysSold  int `json:"days_sold"`

	DailyRate               float64 `json:"daily_rate"`
	VacationValue           float64 `json:"vacation_value"`
	ConstitutionalAddition  float64 `json:"constitutional_addition"`
	TaxableVacationSubtotal float64 `json:"taxable_vacation_subtotal"`

	BonusValue          float64 `json:"bonus_value"`
	BonusAddition       float64 `json:"bonus_addition"`
	ExemptBonusSubtotal float64 `json:"exempt_bonus_subtotal"`

	ThirteenthAdvance float64 `json:"thirteenth_advance"`
	PLRGross          float64 `json:"plr_gross"`
}

// CalculationResult is the complete, unrounded outcome of one calculation.
type CalculationResult struct {
	Breakdown

	INSSWithheld float64 `json:"inss_withheld"`
	IRRFWithheld float64 `json:"irrf_withheld"`
	IRRFPLR      float64 `json:"irrf_plr"`
	PLRNet       float64 `json:"plr_net"`

	TotalGrossVacation float64 `json:"total_gross_vacation"`
	TotalGross         float64 `json:"total_gross"`
	TotalDeductions    float64 `json:"total_deductions"`
	TotalNet           float64 `json:"total_net"`
}

// Outcome is what the core hands back: either Errors is non-empty or Result
// is set, never both. Messages may hold warnings next to a Result.
type Outcome struct {
	Errors   map[string]string
	Messages []CalculationMessage
	Result   *CalculationResult
}

// Valid reports whether the inputs passed validation.
func (o Outcome) Valid() bool {
	return len(o.Errors) == 0 && o.Result != nil
}
