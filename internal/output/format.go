package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/accolaben-a11y/three-buckets/internal/domain"
)

// Formatter renders a calculation result to bytes. Formatters are read-only
// consumers: they never mutate the result.
type Formatter interface {
	Format(result *domain.FullCalculationResult) ([]byte, error)
}

// GetFormatterByName returns the formatter for a format name, or nil for an
// unknown name.
func GetFormatterByName(name string) Formatter {
	switch strings.ToLower(name) {
	case "console":
		return &ConsoleFormatter{}
	case "json":
		return &JSONFormatter{Pretty: true}
	case "csv":
		return &CSVFormatter{}
	default:
		return nil
	}
}

// FormatCurrency renders integer cents as whole dollars with thousands
// separators, e.g. 1234500 -> "$12,345".
func FormatCurrency(cents int64) string {
	dollars := cents / 100
	negative := dollars < 0
	if negative {
		dollars = -dollars
	}

	digits := strconv.FormatInt(dollars, 10)
	var sb strings.Builder
	if negative {
		sb.WriteByte('-')
	}
	sb.WriteByte('$')
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(d)
	}
	return sb.String()
}

// FormatBps renders basis points as a percentage, e.g. 650 -> "6.50%".
func FormatBps(bps int64) string {
	return fmt.Sprintf("%d.%02d%%", bps/100, bps%100)
}
