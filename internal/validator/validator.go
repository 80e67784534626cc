// Package validator turns raw form values into model.Inputs and checks them
// against the CLT limits. Every violated rule is reported, not only the first.
package validator

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"ferias-engine/internal/model"
)

const (
	MinimumWage     = 1412.00
	MaxVacationDays = 30
	MaxSoldDays     = 10
	// MinDaysWhenSelling is the rest a worker must still take after selling days.
	MinDaysWhenSelling = 15

	// maxGrossFactor bounds the non-PLR gross as a multiple of the salary:
	// 30 days plus one third, plus half a salary of 13th advance.
	maxGrossFactor = 2
)

var (
	ErrEmpty      = errors.New("empty value")
	ErrNotInteger = errors.New("not an integer")
)

// Validate parses req and collects a message per violated rule. Inputs is
// only meaningful when none of the messages is CRITICAL; warnings describe
// values that were accepted after being adjusted.
func Validate(req *model.CalculationRequest) (model.Inputs, []model.CalculationMessage) {
	var msgs []model.CalculationMessage
	report := func(level, field, code, message string) {
		msgs = append(msgs, model.CalculationMessage{
			ID:      len(msgs),
			Level:   level,
			Code:    code,
			Field:   field,
			Message: message,
		})
	}
	add := func(field, code, message string) {
		report(model.LevelCritical, field, code, message)
	}

	in := model.Inputs{
		Advance13thRequested: req.Advance13thRequested,
		IncludePLR:           req.IncludePLR,
	}

	salary, err := parseFloat(req.GrossSalary)
	salaryOK := err == nil && salary >= MinimumWage
	if !salaryOK {
		add(model.FieldGrossSalary, "SALARY_BELOW_MINIMUM", "Salário deve ser de no mínimo R$ 1.412,00.")
	} else if !finite(salary * maxGrossFactor) {
		salaryOK = false
		add(model.FieldGrossSalary, "SALARY_TOO_LARGE", "Salário informado é grande demais para o cálculo.")
	}
	in.GrossSalary = salary

	taken, takenErr := parseInt(req.VacationDaysTaken)
	if takenErr != nil || taken < 1 || taken > MaxVacationDays {
		add(model.FieldVacationDaysTaken, "VACATION_DAYS_OUT_OF_RANGE", "Dias a gozar devem ser entre 1 e 30.")
	}
	in.VacationDaysTaken = taken

	sold, soldErr := parseInt(req.VacationDaysSold)
	if soldErr != nil || sold < 0 || sold > MaxSoldDays {
		add(model.FieldVacationDaysSold, "SOLD_DAYS_OUT_OF_RANGE", "A venda é limitada a 10 dias.")
	}
	in.VacationDaysSold = sold

	// Cross-field rules need both day counts.
	if takenErr == nil && soldErr == nil {
		if taken+sold > MaxVacationDays {
			add(model.FieldVacationDaysTaken, "VACATION_PERIOD_EXCEEDED", "A soma de dias a gozar e dias vendidos não pode exceder 30.")
		}
		if sold > 0 && taken < MinDaysWhenSelling {
			add(model.FieldVacationDaysTaken, "MINIMUM_REST_WHEN_SELLING", "Ao vender férias, você deve gozar de no mínimo 15 dias.")
		}
	}

	if req.IncludePLR {
		// A blank or unreadable percentage counts as zero.
		pct, err := parseFloat(req.PLRPercentage)
		if err != nil {
			pct = 0
			report(model.LevelWarning, model.FieldPLRPercentage, "PLR_PERCENTAGE_DEFAULTED", "Porcentagem da PLR não informada; considerado 0%.")
		}
		switch {
		case pct < 0:
			add(model.FieldPLRPercentage, "NEGATIVE_PLR_PERCENTAGE", "A porcentagem da PLR não pode ser negativa.")
		case salaryOK && !finite(salary*maxGrossFactor+salary*(pct/100)):
			add(model.FieldPLRPercentage, "PLR_PERCENTAGE_TOO_LARGE", "A porcentagem da PLR é grande demais para o cálculo.")
		}
		in.PLRPercentage = pct
	}

	return in, msgs
}

// HasCritical reports whether any message blocks the calculation.
func HasCritical(msgs []model.CalculationMessage) bool {
	for _, m := range msgs {
		if m.Level == model.LevelCritical {
			return true
		}
	}
	return false
}

// Errors folds CRITICAL messages into the field to message mapping shown next
// to each input. When a field has several messages the last one wins, so
// rules are emitted from least to most specific.
func Errors(msgs []model.CalculationMessage) map[string]string {
	errs := make(map[string]string, len(msgs))
	for _, m := range msgs {
		if m.Level == model.LevelCritical {
			errs[m.Field] = m.Message
		}
	}
	return errs
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

func parseFloat(raw model.RawNumber) (float64, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" {
		return 0, ErrEmpty
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("parse %q: %w", s, strconv.ErrRange)
	}
	return v, nil
}

func parseInt(raw model.RawNumber) (int, error) {
	v, err := parseFloat(raw)
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		return 0, fmt.Errorf("parse %q: %w", raw, ErrNotInteger)
	}
	return int(v), nil
}
