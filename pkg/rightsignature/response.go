package rightsignature

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mitchellh/mapstructure"
)

// Node is a read-only view of a decoded JSON value.
//
// Objects are map[string]any, arrays []any and numbers json.Number. The zero Node represents
// an absent value, so lookups can be chained without checking each step:
//
//	status := resp.Get("document", "status").String()
type Node struct {
	v any
}

// NewNode wraps an already decoded JSON value.
func NewNode(v any) Node {
	return Node{v: v}
}

// ParseNode decodes data into a Node, keeping numbers as json.Number.
func ParseNode(data []byte) (Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return Node{}, err
	}
	if dec.More() {
		return Node{}, fmt.Errorf("unexpected data after top-level JSON value")
	}
	return Node{v: v}, nil
}

// Get walks the object keys in path. Any step that is missing or not an object gives the zero Node.
func (n Node) Get(path ...string) Node {
	cur := n.v
	for _, key := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return Node{}
		}
		cur = obj[key]
	}
	return Node{v: cur}
}

// Exists reports whether the value is present (JSON null counts as absent).
func (n Node) Exists() bool { return n.v != nil }

// IsEmpty mirrors the emptiness test the API's original PHP clients relied on: absent, null,
// "", "0", false, zero, and empty arrays or objects are all empty.
func (n Node) IsEmpty() bool {
	switch v := n.v.(type) {
	case nil:
		return true
	case string:
		return v == "" || v == "0"
	case bool:
		return !v
	case json.Number:
		f, err := v.Float64()
		return err == nil && f == 0
	case float64:
		return v == 0
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	}
	return false
}

// IsArray reports whether the value is a JSON array.
func (n Node) IsArray() bool {
	_, ok := n.v.([]any)
	return ok
}

// IsObject reports whether the value is a JSON object.
func (n Node) IsObject() bool {
	_, ok := n.v.(map[string]any)
	return ok
}

// String returns scalars in their textual form and "" for anything else.
func (n Node) String() string {
	switch v := n.v.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

// Int returns the value as an int. Numeric strings are accepted; anything else is 0.
func (n Node) Int() int {
	switch v := n.v.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return int(i)
		}
		if f, err := v.Float64(); err == nil {
			return int(f)
		}
	case float64:
		return int(v)
	case string:
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return 0
}

// Items returns the elements of an array, or nil when the value is not an array.
func (n Node) Items() []Node {
	arr, ok := n.v.([]any)
	if !ok {
		return nil
	}
	items := make([]Node, len(arr))
	for i, v := range arr {
		items[i] = Node{v: v}
	}
	return items
}

// Raw returns the underlying decoded value.
func (n Node) Raw() any { return n.v }

// MarshalJSON encodes the underlying value.
func (n Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.v)
}

// Decode copies the value into out (a pointer to a struct, map or slice) using `mapstructure` tags.
// Input is weakly typed, because the API is not consistent about quoting numbers;
// json.Number values convert to any numeric or string field.
func (n Node) Decode(out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(n.v)
}
