package openload

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexInt decodes integers the API reports either as JSON numbers or as
// quoted numeric strings, depending on the endpoint.
type FlexInt int64

func (n *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("parsing %q as integer: %w", s, err)
	}
	*n = FlexInt(v)

	return nil
}

// FlexString decodes scalars the API reports either as JSON strings or as
// numbers, preserved in their string form exactly as reported.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = ""
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = FlexString(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("parsing %s as string or number: %w", data, err)
	}
	*s = FlexString(num.String())

	return nil
}

// extraFields collects payload keys the typed descriptor does not model, so
// additional remote fields stay accessible without a schema change.
func extraFields(data []byte, known ...string) map[string]any {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	for _, k := range known {
		delete(raw, k)
	}
	if len(raw) == 0 {
		return nil
	}

	return raw
}
