package diag

import "encoding/json"

// ToJSON renders a diagnostic list as JSON. Output is deterministic: the
// list keeps emission order and encoding/json sorts the Data keys.
func ToJSON(diags []Diagnostic, compact bool) (string, error) {
	if diags == nil {
		diags = []Diagnostic{}
	}
	var data []byte
	var err error
	if compact {
		data, err = json.Marshal(diags)
	} else {
		data, err = json.MarshalIndent(diags, "", "  ")
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
