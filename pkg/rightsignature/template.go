package rightsignature

import (
	"context"
	"net/http"
)

// TemplateListOptions filters a template listing. Zero Page and PerPage select 1 and 10.
type TemplateListOptions struct {
	Page    int
	PerPage int
	Search  string
}

// Template is a client for one RightSignature template.
type Template struct {
	resource
}

func newTemplate(conn *Connection, r resource) *Template {
	r.conn = conn
	r.kind = "template"
	return &Template{resource: r}
}

// SetGUID sets the guid used when an operation is given none and nothing is loaded.
func (t *Template) SetGUID(guid string) *Template {
	t.guid = guid
	return t
}

// GUID returns the guid set with SetGUID.
func (t *Template) GUID() string { return t.guid }

// Load fetches the template. The loaded template is only replaced when the API returns one.
func (t *Template) Load(ctx context.Context, guid string) (*Template, error) {
	if err := t.fetch(ctx, guid, "templates"); err != nil {
		return t, err
	}
	return t, nil
}

// Get returns the loaded template, or one of its fields when name is set.
func (t *Template) Get(name string) (Node, error) {
	return t.get(name)
}

// Loaded returns the loaded template, if any.
func (t *Template) Loaded() (Node, bool) {
	return t.loadedNode()
}

// List returns one page of templates.
func (t *Template) List(ctx context.Context, opts TemplateListOptions) (*Page, error) {
	resp, err := t.conn.Call(ctx, Request{Path: "templates", Query: listQuery(opts.Page, opts.PerPage, opts.Search, "")})
	if err != nil {
		return nil, err
	}
	return normalizePage(resp, "templates", "template", "total_templates"), nil
}

// Count returns the number of templates and pages at the default page size.
func (t *Template) Count(ctx context.Context) (Count, error) {
	resp, err := t.conn.Call(ctx, Request{Path: "templates"})
	if err != nil {
		return Count{}, err
	}
	return pageCount(resp, "total_templates")
}

// Prepackage clones one template, or merges several, into a new prepackaged template and loads it.
// With no guids, or a single empty one, the resolved guid is used. callback is optional.
func (t *Template) Prepackage(ctx context.Context, callback string, guids ...string) (*Template, error) {
	guids, err := t.resolveGUIDs(guids)
	if err != nil {
		return t, err
	}

	query := map[string]any{}
	if callback != "" {
		query["callback_location"] = callback
	}

	resp, err := t.conn.Call(ctx, Request{
		Path:   "templates/" + pathGUIDs(guids...) + "/prepackage",
		Query:  query,
		Method: http.MethodPost,
	})
	if err != nil {
		return t, err
	}
	t.store(resp.Get("template"))
	return t, nil
}

// Prefill fills the template's roles, merge fields and tags and loads the result.
// The action defaults to "fill".
func (t *Template) Prefill(ctx context.Context, opts PrefillOptions, guid string) (*Template, error) {
	resp, err := t.postTemplate(ctx, nil, opts.actionOr("fill"), opts, guid)
	if err != nil {
		return t, err
	}
	t.store(resp.Get("template"))
	return t, nil
}

// PrefillAndSend prefills the template and sends it. The returned Document is not loaded.
// The action defaults to "send".
func (t *Template) PrefillAndSend(ctx context.Context, opts PrefillOptions, guid string) (*Document, error) {
	resp, err := t.postTemplate(ctx, nil, opts.actionOr("send"), opts, guid)
	if err != nil {
		return nil, err
	}
	return t.documentFrom(resp), nil
}

// SwapTemplate replaces the template's underlying file with the one at path and prefills it.
// The returned Document is not loaded. The action defaults to "prefill".
func (t *Template) SwapTemplate(ctx context.Context, path string, opts PrefillOptions, guid string) (*Document, error) {
	data, err := t.readDocumentData(path)
	if err != nil {
		return nil, err
	}
	resp, err := t.postTemplate(ctx, data, opts.actionOr("prefill"), opts, guid)
	if err != nil {
		return nil, err
	}
	return t.documentFrom(resp), nil
}

func (t *Template) postTemplate(ctx context.Context, data *DocumentData, action string, opts PrefillOptions, guid string) (Node, error) {
	guid, err := t.resolveGUID(guid)
	if err != nil {
		return Node{}, err
	}
	body, err := EncodeTemplateBody(data, guid, action, opts)
	if err != nil {
		return Node{}, err
	}
	return t.conn.Call(ctx, Request{Path: "templates", Method: http.MethodPost, Body: body})
}

func (t *Template) documentFrom(resp Node) *Document {
	doc := newDocument(t.conn, resource{fs: t.fs})
	return doc.SetGUID(resp.Get("document", "guid").String())
}

// listQuery builds the listing arguments shared by templates and documents.
func listQuery(page, perPage int, search, state string) map[string]any {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 10
	}
	query := map[string]any{
		"page":     page,
		"per_page": perPage,
	}
	if search != "" {
		query["search"] = search
	}
	if state != "" {
		query["state"] = state
	}
	return query
}
