package compare

import (
	"encoding/json"
	"errors"
	"fmt"
)

// JSONFormatter writes a comparison set with camelCase keys: the base result,
// each alternative with its deltas, and the recommendations. Projection series
// are left out; use the output package for those.
type JSONFormatter struct {
	Pretty bool
}

// Format encodes the set. A nil set is an error rather than "null".
func (jf *JSONFormatter) Format(compSet *ComparisonSet) (string, error) {
	if compSet == nil {
		return "", errors.New("no comparison to format")
	}

	encode := json.Marshal
	if jf.Pretty {
		encode = func(v any) ([]byte, error) { return json.MarshalIndent(v, "", "  ") }
	}
	data, err := encode(compSet)
	if err != nil {
		return "", fmt.Errorf("failed to encode comparison for %s: %w", compSet.BaseScenarioName, err)
	}
	return string(data), nil
}
