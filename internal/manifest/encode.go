package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

const indentUnit = "    "

// Marshal renders o as indented JSON in key order, followed by a newline.
// Slashes and HTML characters are written literally.
func Marshal(o *Object) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeValue(&buf, o, 0); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func writeValue(buf *bytes.Buffer, v any, depth int) error {
	switch val := v.(type) {
	case *Object:
		return writeObject(buf, val, depth)
	case []any:
		return writeList(buf, val, depth)
	case json.Number:
		buf.WriteString(val.String())
		return nil
	case nil:
		buf.WriteString("null")
		return nil
	default:
		return writeScalar(buf, val)
	}
}

func writeObject(buf *bytes.Buffer, o *Object, depth int) error {
	if o.Len() == 0 {
		buf.WriteString("{}")
		return nil
	}
	buf.WriteString("{\n")
	for i, k := range o.keys {
		buf.WriteString(strings.Repeat(indentUnit, depth+1))
		if err := writeScalar(buf, k); err != nil {
			return err
		}
		buf.WriteString(": ")
		if err := writeValue(buf, o.values[k], depth+1); err != nil {
			return fmt.Errorf("encoding %q: %w", k, err)
		}
		if i < len(o.keys)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString(strings.Repeat(indentUnit, depth))
	buf.WriteByte('}')
	return nil
}

func writeList(buf *bytes.Buffer, list []any, depth int) error {
	if len(list) == 0 {
		buf.WriteString("[]")
		return nil
	}
	buf.WriteString("[\n")
	for i, item := range list {
		buf.WriteString(strings.Repeat(indentUnit, depth+1))
		if err := writeValue(buf, item, depth+1); err != nil {
			return err
		}
		if i < len(list)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString(strings.Repeat(indentUnit, depth))
	buf.WriteByte(']')
	return nil
}

// writeScalar encodes strings, bools, and numbers without HTML escaping.
func writeScalar(buf *bytes.Buffer, v any) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
	return nil
}
