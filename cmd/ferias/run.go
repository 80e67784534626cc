package main

import (
	"flag"
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	json "github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"

	"ferias-engine/internal/currency"
	"ferias-engine/internal/engine"
	"ferias-engine/internal/model"
)

const (
	exitOK         = 0
	exitUsage      = 1
	exitValidation = 2
	exitInternal   = 3
)

var fieldLabels = map[string]string{
	model.FieldGrossSalary:       "Salário bruto",
	model.FieldVacationDaysTaken: "Dias a gozar",
	model.FieldVacationDaysSold:  "Dias vendidos",
	model.FieldPLRPercentage:     "PLR (%)",
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ferias", flag.ContinueOnError)
	fs.SetOutput(stderr)
	salary := fs.String("salario", "5000", "salário bruto mensal")
	taken := fs.String("dias", "20", "dias de férias a gozar")
	sold := fs.String("vendidos", "0", "dias vendidos (abono pecuniário)")
	advance := fs.Bool("adiantar13", false, "adiantar a 1ª parcela do 13º")
	plr := fs.Bool("plr", false, "incluir PLR no cálculo")
	plrPct := fs.String("plr-pct", "100", "PLR em % do salário")
	asJSON := fs.Bool("json", false, "imprimir a resposta em JSON")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	req := &model.CalculationRequest{
		GrossSalary:          model.RawNumber(*salary),
		VacationDaysTaken:    model.RawNumber(*taken),
		VacationDaysSold:     model.RawNumber(*sold),
		Advance13thRequested: *advance,
		IncludePLR:           *plr,
		PLRPercentage:        model.RawNumber(*plrPct),
	}

	e, err := engine.New(nil, 0)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitInternal
	}
	resp := e.Process(req)

	if *asJSON {
		b, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitInternal
		}
		fmt.Fprintln(stdout, string(b))
	} else if resp.CalculationResult == nil {
		printErrors(stderr, resp.Errors)
	} else {
		printWarnings(stderr, resp.Messages)
		if err := printResult(stdout, resp.CalculationResult, req.Advance13thRequested); err != nil {
			fmt.Fprintln(stderr, err)
			return exitInternal
		}
	}

	if resp.CalculationResult == nil {
		return exitValidation
	}
	return exitOK
}

func printErrors(w io.Writer, errs map[string]string) {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	red := color.New(color.FgRed, color.Bold)
	for _, f := range fields {
		red.Fprintf(w, "%s: %s\n", label(f), errs[f])
	}
}

func printWarnings(w io.Writer, msgs []model.CalculationMessage) {
	yellow := color.New(color.FgYellow)
	for _, m := range msgs {
		if m.Level == model.LevelWarning {
			yellow.Fprintf(w, "%s: %s\n", label(m.Field), m.Message)
		}
	}
}

func label(field string) string {
	if l := fieldLabels[field]; l != "" {
		return l
	}
	return field
}

// printResult shows the same sections as the web form: abono only when days
// were sold, 13th only when requested, PLR only when there is some.
func printResult(w io.Writer, r *model.CalculationResult, advance bool) error {
	brl := currency.FormatBRL
	rows := [][]string{
		{"Férias gozadas", ""},
		{"Dias gozados", fmt.Sprintf("%d dias", r.DaysTaken)},
		{"Valor das férias", brl(r.VacationValue)},
		{"1/3 constitucional", brl(r.ConstitutionalAddition)},
		{"Subtotal (tributável)", brl(r.TaxableVacationSubtotal)},
	}
	if r.DaysSold > 0 {
		rows = append(rows,
			[]string{"Abono pecuniário", ""},
			[]string{"Dias vendidos", fmt.Sprintf("%d dias", r.DaysSold)},
			[]string{"Valor do abono", brl(r.BonusValue)},
			[]string{"1/3 sobre abono", brl(r.BonusAddition)},
			[]string{"Subtotal (isento)", brl(r.ExemptBonusSubtotal)},
		)
	}
	if advance {
		rows = append(rows, []string{"1ª parcela do 13º (isento)", brl(r.ThirteenthAdvance)})
	}
	if r.PLRGross > 0 {
		rows = append(rows,
			[]string{"PLR bruta", brl(r.PLRGross)},
			[]string{"IRRF sobre PLR", "-" + brl(r.IRRFPLR)},
			[]string{"PLR líquida", brl(r.PLRNet)},
		)
	}
	rows = append(rows,
		[]string{"Total bruto", brl(r.TotalGross)},
		[]string{"INSS férias", "-" + brl(r.INSSWithheld)},
		[]string{"IRRF férias", "-" + brl(r.IRRFWithheld)},
	)
	if r.IRRFPLR > 0 {
		rows = append(rows, []string{"IRRF PLR", "-" + brl(r.IRRFPLR)})
	}

	table := tablewriter.NewWriter(w)
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return fmt.Errorf("append row: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("render table: %w", err)
	}

	color.New(color.FgGreen, color.Bold).Fprintf(w, "Valor líquido final: %s\n", brl(r.TotalNet))
	return nil
}
