package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/sgplan/lifeplan/internal/domain"
)

// CSVFormatter emits one row per scenario-year so a full projection can be
// loaded straight into a spreadsheet.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Year", "Age", "NetWorth", "CashFlow", "CPFTotal", "CPFOA", "CPFSA", "CPFMA", "CashSavings", "Investments", "MonthlyIncome", "AnnualExpenses", "GrantsReceived"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range results.Scenarios {
		for _, y := range sc.Projection {
			row := []string{
				sc.Name,
				strconv.Itoa(y.Year),
				strconv.Itoa(y.Age),
				strconv.FormatInt(y.NetWorth, 10),
				strconv.FormatInt(y.CashFlow, 10),
				strconv.FormatInt(y.CPFTotal, 10),
				strconv.FormatInt(y.CPFOrdinary, 10),
				strconv.FormatInt(y.CPFSpecial, 10),
				strconv.FormatInt(y.CPFMedisave, 10),
				strconv.FormatInt(y.CashSavings, 10),
				strconv.FormatInt(y.Investments, 10),
				strconv.FormatInt(y.MonthlyIncome, 10),
				strconv.FormatInt(y.AnnualExpenses, 10),
				strconv.FormatInt(y.GrantsReceived, 10),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
