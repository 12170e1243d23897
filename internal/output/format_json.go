package output

import (
	"github.com/accolaben-a11y/three-buckets/internal/domain"
	"github.com/goccy/go-json"
)

// JSONFormatter renders the result as JSON for machine consumers (the
// dashboard fetches this shape verbatim).
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

// Format generates JSON output for the calculation result.
func (jf *JSONFormatter) Format(result *domain.FullCalculationResult) ([]byte, error) {
	if jf.Pretty {
		return json.MarshalIndent(result, "", "  ")
	}
	return json.Marshal(result)
}
