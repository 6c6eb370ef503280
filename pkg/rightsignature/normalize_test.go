package rightsignature

import (
	"testing"
)

func mustParse(t *testing.T, s string) Node {
	t.Helper()
	n, err := ParseNode([]byte(s))
	if err != nil {
		t.Fatalf("ParseNode(%s) error = %v", s, err)
	}
	return n
}

func guids(items []Node) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Get("guid").String()
	}
	return out
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantGUIDs []string
		wantTotal int
	}{
		{
			name:      "single item returned as object",
			body:      `{"page":{"total_templates":1,"total_pages":1,"templates":{"template":{"guid":"a"}}}}`,
			wantGUIDs: []string{"a"},
			wantTotal: 1,
		},
		{
			name:      "single item returned as array",
			body:      `{"page":{"total_templates":1,"templates":[{"guid":"a"}]}}`,
			wantGUIDs: []string{"a"},
			wantTotal: 1,
		},
		{
			name:      "single item returned bare",
			body:      `{"page":{"total_templates":1,"templates":{"guid":"a"}}}`,
			wantGUIDs: []string{"a"},
			wantTotal: 1,
		},
		{
			name:      "several items returned as array",
			body:      `{"page":{"total_templates":"2","total_pages":1,"templates":[{"guid":"a"},{"guid":"b"}]}}`,
			wantGUIDs: []string{"a", "b"},
			wantTotal: 2,
		},
		{
			name:      "several items nested under item key",
			body:      `{"page":{"total_templates":3,"templates":{"template":[{"guid":"a"},{"guid":"b"},{"guid":"c"}]}}}`,
			wantGUIDs: []string{"a", "b", "c"},
			wantTotal: 3,
		},
		{
			name:      "empty collection",
			body:      `{"page":{"total_templates":0,"total_pages":0,"templates":[]}}`,
			wantGUIDs: []string{},
		},
		{
			name:      "absent collection",
			body:      `{"page":{"total_templates":0}}`,
			wantGUIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := mustParse(t, tt.body)
			page := normalizePage(resp, "templates", "template", "total_templates")

			got := guids(page.Items)
			if len(got) != len(tt.wantGUIDs) {
				t.Fatalf("Items guids = %v, want %v", got, tt.wantGUIDs)
			}
			for i := range got {
				if got[i] != tt.wantGUIDs[i] {
					t.Errorf("Items[%d] guid = %q, want %q", i, got[i], tt.wantGUIDs[i])
				}
			}
			if page.Total != tt.wantTotal {
				t.Errorf("Total = %d, want %d", page.Total, tt.wantTotal)
			}
			if page.Raw.Raw() == nil {
				t.Error("Raw envelope not kept")
			}
		})
	}
}

func TestNormalizeBatch(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{"singular document", `{"documents":{"document":{"guid":"g1"}}}`, []string{"g1"}},
		{"real list", `{"documents":[{"guid":"g1"},{"guid":"g2"}]}`, []string{"g1", "g2"}},
		{"neither", `{"documents":[]}`, []string{}},
		{"no documents key", `{}`, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := guids(normalizeBatch(mustParse(t, tt.body)))
			if len(got) != len(tt.want) {
				t.Fatalf("normalizeBatch() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("normalizeBatch()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPageCount(t *testing.T) {
	resp := mustParse(t, `{"page":{"total_documents":"42","total_pages":5}}`)

	c, err := pageCount(resp, "total_documents")
	if err != nil {
		t.Fatalf("pageCount() error = %v", err)
	}
	if c.Total != 42 || c.TotalPages != 5 {
		t.Errorf("pageCount() = %+v, want {Total:42 TotalPages:5}", c)
	}
}
