package rightsignature

import "testing"

func TestEncodeQuery(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{"empty", map[string]any{}, ""},
		{"list arguments", map[string]any{"page": 2, "per_page": 5, "search": "foo bar"}, "page=2&per_page=5&search=foo%20bar"},
		{"reserved characters", map[string]any{"callback_location": "https://x.test/cb?a=1&b=2"}, "callback_location=https%3A%2F%2Fx.test%2Fcb%3Fa%3D1%26b%3D2"},
		{"booleans", map[string]any{"a": true, "b": false}, "a=1&b=0"},
		{"nil skipped", map[string]any{"a": nil, "b": "x"}, "b=x"},
		{"slice", map[string]any{"ids": []string{"x", "y"}}, "ids%5B0%5D=x&ids%5B1%5D=y"},
		{
			"nested map",
			map[string]any{"filter": map[string]any{"state": "pending", "tags": []any{"a", 1}}},
			"filter%5Bstate%5D=pending&filter%5Btags%5D%5B0%5D=a&filter%5Btags%5D%5B1%5D=1",
		},
		{"typed map", map[string]any{"m": map[string]int{"b": 2, "a": 1}}, "m%5Ba%5D=1&m%5Bb%5D=2"},
		{"tilde kept", map[string]any{"q": "a~b"}, "q=a~b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EncodeQuery(tt.args); got != tt.want {
				t.Errorf("EncodeQuery() = %q, want %q", got, tt.want)
			}
		})
	}
}
