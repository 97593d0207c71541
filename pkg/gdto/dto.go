package gdto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexInt decodes from a JSON number or a numeric string, since HTML forms post
// select values such as "duration": "2" as strings.
type FlexInt int64

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		if s == "" {
			*f = 0

			return nil
		}

		data = []byte(s)
	}

	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("gdto: %q is not an integer", string(data))
	}

	*f = FlexInt(n)

	return nil
}

func (f FlexInt) Int() int {
	return int(f)
}

func (f FlexInt) Int64() int64 {
	return int64(f)
}

type Message struct {
	Message string `json:"message"`
}
