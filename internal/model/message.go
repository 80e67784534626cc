package model

// CalculationMessage is a single validation violation reported back to the
// caller. Field names the input it belongs to.
type CalculationMessage struct {
	ID      int    `json:"id"`
	Level   string `json:"level"`
	Code    string `json:"code"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

const (
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
)

// Input field names, as used on the wire and as keys of the error mapping.
const (
	FieldGrossSalary       = "gross_salary"
	FieldVacationDaysTaken = "vacation_days_taken"
	FieldVacationDaysSold  = "vacation_days_sold"
	FieldPLRPercentage     = "plr_percentage"
)
