package model

import (
	"bytes"
	"strconv"

	json "github.com/goccy/go-json"
)

// CalculationRequest carries the raw form values. Numeric fields may arrive
// as JSON numbers or as strings typed by the user.
type CalculationRequest struct {
	GrossSalary          RawNumber `json:"gross_salary"`
	VacationDaysTaken    RawNumber `json:"vacation_days_taken"`
	VacationDaysSold     RawNumber `json:"vacation_days_sold"`
	Advance13thRequested bool      `json:"advance_13th_requested"`
	IncludePLR           bool      `json:"include_plr"`
	PLRPercentage        RawNumber `json:"plr_percentage"`
}

// RawNumber is the unparsed text of a numeric input.
type RawNumber string

// Num builds a RawNumber from a float, for callers that already hold numbers.
func Num(v float64) RawNumber {
	return RawNumber(strconv.FormatFloat(v, 'f', -1, 64))
}

func (n *RawNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = RawNumber(s)
		return nil
	}
	*n = RawNumber(data)
	return nil
}

// Inputs is the parsed form of a CalculationRequest. It is comparable so it
// can key a memo cache.
type Inputs struct {
	GrossSalary          float64
	VacationDaysTaken    int
	VacationDaysSold     int
	Advance13thRequested bool
	IncludePLR           bool
	PLRPercentage        float64
}
