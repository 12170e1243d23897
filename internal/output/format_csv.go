package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/accolaben-a11y/three-buckets/internal/domain"
)

// CSVFormatter renders the longevity projection as CSV, one row per year,
// for spreadsheet consumers. Amounts are emitted in cents.
type CSVFormatter struct{}

// Format generates CSV output for the longevity projection.
func (cf *CSVFormatter) Format(result *domain.FullCalculationResult) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{
		"age",
		"bucket1_income_cents",
		"bucket2_balance_cents",
		"bucket3_balance_cents",
		"total_income_cents",
		"target_income_cents",
	}
	if err := writer.Write(header); err != nil {
		return nil, err
	}

	for _, snap := range result.LongevityProjection {
		row := []string{
			strconv.Itoa(snap.Age),
			strconv.FormatInt(snap.Bucket1IncomeCents, 10),
			strconv.FormatInt(snap.Bucket2BalanceCents, 10),
			strconv.FormatInt(snap.Bucket3BalanceCents, 10),
			strconv.FormatInt(snap.TotalIncomeCents, 10),
			strconv.FormatInt(snap.TargetIncomeCents, 10),
		}
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
