package model

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Text is a form value decoded from any JSON scalar. Values a browser form
// would treat as absent (null, false, 0, "") decode to the empty string;
// other numbers and true keep their literal text; objects and arrays keep
// their compact JSON.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*t = ""
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	case 'n', 'f':
		*t = ""
	case 't':
		*t = "true"
	case '{', '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err != nil {
			return err
		}
		*t = Text(buf.String())
	default:
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return err
		}
		if f == 0 {
			*t = ""
			return nil
		}
		*t = Text(data)
	}
	return nil
}

func (t Text) String() string {
	return string(t)
}
