package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ferias-engine/internal/model"
)

func request(salary, taken, sold string) *model.CalculationRequest {
	return &model.CalculationRequest{
		GrossSalary:       model.RawNumber(salary),
		VacationDaysTaken: model.RawNumber(taken),
		VacationDaysSold:  model.RawNumber(sold),
	}
}

func TestValidateAcceptsMinimumWageFullVacation(t *testing.T) {
	in, msgs := Validate(request("1412.00", "30", "0"))

	require.Empty(t, msgs)
	assert.Equal(t, model.Inputs{GrossSalary: 1412, VacationDaysTaken: 30}, in)
}

func TestValidateSalaryBelowMinimumOnly(t *testing.T) {
	_, msgs := Validate(request("1000", "20", "0"))
	errs := Errors(msgs)

	require.Len(t, errs, 1)
	assert.Contains(t, errs, model.FieldGrossSalary)
}

func TestValidateRules(t *testing.T) {
	tests := []struct {
		name      string
		req       *model.CalculationRequest
		wantField string
		wantCodes []string
	}{
		{
			name:      "non numeric salary",
			req:       request("abc", "20", "0"),
			wantField: model.FieldGrossSalary,
			wantCodes: []string{"SALARY_BELOW_MINIMUM"},
		},
		{
			name:      "zero days taken",
			req:       request("3000", "0", "0"),
			wantField: model.FieldVacationDaysTaken,
			wantCodes: []string{"VACATION_DAYS_OUT_OF_RANGE"},
		},
		{
			name:      "too many days taken also exceeds the period",
			req:       request("3000", "31", "0"),
			wantField: model.FieldVacationDaysTaken,
			wantCodes: []string{"VACATION_DAYS_OUT_OF_RANGE", "VACATION_PERIOD_EXCEEDED"},
		},
		{
			name:      "fractional days taken",
			req:       request("3000", "20.5", "0"),
			wantField: model.FieldVacationDaysTaken,
			wantCodes: []string{"VACATION_DAYS_OUT_OF_RANGE"},
		},
		{
			name:      "too many days sold",
			req:       request("3000", "15", "11"),
			wantField: model.FieldVacationDaysSold,
			wantCodes: []string{"SOLD_DAYS_OUT_OF_RANGE"},
		},
		{
			name:      "negative days sold",
			req:       request("3000", "15", "-1"),
			wantField: model.FieldVacationDaysSold,
			wantCodes: []string{"SOLD_DAYS_OUT_OF_RANGE"},
		},
		{
			name:      "period exceeded",
			req:       request("3000", "25", "10"),
			wantField: model.FieldVacationDaysTaken,
			wantCodes: []string{"VACATION_PERIOD_EXCEEDED"},
		},
		{
			name:      "selling requires fifteen days of rest",
			req:       request("3000", "10", "5"),
			wantField: model.FieldVacationDaysTaken,
			wantCodes: []string{"MINIMUM_REST_WHEN_SELLING"},
		},
		{
			name: "negative plr percentage",
			req: &model.CalculationRequest{
				GrossSalary:       "3000",
				VacationDaysTaken: "20",
				VacationDaysSold:  "0",
				IncludePLR:        true,
				PLRPercentage:     "-5",
			},
			wantField: model.FieldPLRPercentage,
			wantCodes: []string{"NEGATIVE_PLR_PERCENTAGE"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, msgs := Validate(tt.req)

			require.Len(t, msgs, len(tt.wantCodes))
			for i, m := range msgs {
				assert.Equal(t, tt.wantField, m.Field)
				assert.Equal(t, tt.wantCodes[i], m.Code)
				assert.Equal(t, model.LevelCritical, m.Level)
				assert.NotEmpty(t, m.Message)
			}
			assert.Len(t, Errors(msgs), 1)
		})
	}
}

func TestValidateCollectsEveryViolation(t *testing.T) {
	req := &model.CalculationRequest{
		GrossSalary:       "900",
		VacationDaysTaken: "0",
		VacationDaysSold:  "12",
		IncludePLR:        true,
		PLRPercentage:     "-1",
	}

	_, msgs := Validate(req)
	errs := Errors(msgs)

	assert.Len(t, errs, 4)
	for i, m := range msgs {
		assert.Equal(t, i, m.ID)
	}
	// range, then minimum rest when selling
	assert.Len(t, msgs, 5)
	assert.Equal(t, "Ao vender férias, você deve gozar de no mínimo 15 dias.", errs[model.FieldVacationDaysTaken])
}

func TestValidatePLRPercentageIgnoredWhenExcluded(t *testing.T) {
	req := request("3000", "20", "0")
	req.PLRPercentage = "-50"

	in, msgs := Validate(req)

	assert.Empty(t, msgs)
	assert.Zero(t, in.PLRPercentage)
}

func TestValidateBlankPLRPercentageIsZero(t *testing.T) {
	req := request("3000", "20", "0")
	req.IncludePLR = true
	req.PLRPercentage = "  "

	in, msgs := Validate(req)

	require.Len(t, msgs, 1)
	assert.Equal(t, model.LevelWarning, msgs[0].Level)
	assert.Equal(t, "PLR_PERCENTAGE_DEFAULTED", msgs[0].Code)
	assert.Equal(t, model.FieldPLRPercentage, msgs[0].Field)
	assert.False(t, HasCritical(msgs))
	assert.Empty(t, Errors(msgs))
	assert.True(t, in.IncludePLR)
	assert.Zero(t, in.PLRPercentage)
}

func TestValidateRejectsAmountsThatOverflow(t *testing.T) {
	tests := []struct {
		name      string
		req       *model.CalculationRequest
		wantField string
		wantCode  string
	}{
		{
			name:      "salary",
			req:       request("1.5e308", "30", "0"),
			wantField: model.FieldGrossSalary,
			wantCode:  "SALARY_TOO_LARGE",
		},
		{
			name: "plr percentage",
			req: &model.CalculationRequest{
				GrossSalary:       "5000",
				VacationDaysTaken: "30",
				VacationDaysSold:  "0",
				IncludePLR:        true,
				PLRPercentage:     "1e308",
			},
			wantField: model.FieldPLRPercentage,
			wantCode:  "PLR_PERCENTAGE_TOO_LARGE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, msgs := Validate(tt.req)

			require.Len(t, msgs, 1)
			assert.Equal(t, tt.wantField, msgs[0].Field)
			assert.Equal(t, tt.wantCode, msgs[0].Code)
			assert.True(t, HasCritical(msgs))
		})
	}
}

func TestValidateLargeSalaryStaysFinite(t *testing.T) {
	req := request("1e300", "20", "10")
	req.Advance13thRequested = true
	req.IncludePLR = true
	req.PLRPercentage = "1000"

	in, msgs := Validate(req)

	require.Empty(t, msgs)
	assert.Equal(t, 1e300, in.GrossSalary)
}

func TestValidateTrimsWhitespace(t *testing.T) {
	in, msgs := Validate(request(" 5000 ", "20 ", " 10"))

	require.Empty(t, msgs)
	assert.Equal(t, 5000.0, in.GrossSalary)
	assert.Equal(t, 20, in.VacationDaysTaken)
	assert.Equal(t, 10, in.VacationDaysSold)
}
