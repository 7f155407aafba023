package export

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
)

// MarshalJSON encodes members in order; encoding/json would sort a map.
func (o object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(m.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(m.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func renderJSON(w io.Writer, obj object) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", strings.Repeat(" ", DefaultIndentSize))
	return enc.Encode(obj)
}
