package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// StringArray is a JSON-encoded string list column, used for listing image
// galleries. Rows imported from the previous platform sometimes hold a bare
// string or empty text instead of an array; scanning normalizes all of those
// to a list.
type StringArray []string

// Value implements driver.Valuer. A nil array is stored as an empty list so
// the column never holds SQL NULL.
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		a = StringArray{}
	}
	b, err := json.Marshal([]string(a))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (a *StringArray) Scan(value interface{}) error {
	if a == nil {
		return fmt.Errorf("models.StringArray: Scan on nil pointer")
	}

	var raw string
	switch v := value.(type) {
	case nil:
	case []byte:
		raw = string(v)
	case string:
		raw = v
	default:
		return fmt.Errorf("models.StringArray: cannot scan %T", value)
	}

	*a = parseStringArray(strings.TrimSpace(raw))
	return nil
}

// parseStringArray maps column text to a list: a JSON array passes through,
// a JSON string becomes a one-item list, empty or null text becomes the
// empty list, anything else is kept verbatim as a single item.
func parseStringArray(raw string) StringArray {
	if raw == "" || raw == "null" {
		return StringArray{}
	}

	var arr []string
	if err := json.Unmarshal([]byte(raw), &arr); err == nil && arr != nil {
		return StringArray(arr)
	}

	var single string
	if err := json.Unmarshal([]byte(raw), &single); err == nil {
		if single == "" {
			return StringArray{}
		}
		return StringArray{single}
	}

	return StringArray{raw}
}
