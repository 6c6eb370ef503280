package rightsignature

import (
	"context"
	"fmt"
)

// MaxBatchDetails is the largest number of guids one batch_details call accepts.
const MaxBatchDetails = 20

// DocumentListOptions filters a document listing. Zero Page and PerPage select 1 and 10.
type DocumentListOptions struct {
	Page    int
	PerPage int
	Search  string

	// State OPTIONALLY restricts the listing, e.g. "completed" or "pending".
	State string
}

// Document is a client for one RightSignature document.
type Document struct {
	resource
}

func newDocument(conn *Connection, r resource) *Document {
	r.conn = conn
	r.kind = "document"
	return &Document{resource: r}
}

// SetGUID sets the guid used when an operation is given none and nothing is loaded.
func (d *Document) SetGUID(guid string) *Document {
	d.guid = guid
	return d
}

// GUID returns the guid set with SetGUID.
func (d *Document) GUID() string { return d.guid }

// Load fetches the document. The loaded document is only replaced when the API returns one.
func (d *Document) Load(ctx context.Context, guid string) (*Document, error) {
	if err := d.fetch(ctx, guid, "documents"); err != nil {
		return d, err
	}
	return d, nil
}

// Get returns the loaded document, or one of its fields when name is set.
func (d *Document) Get(name string) (Node, error) {
	return d.get(name)
}

// Loaded returns the loaded document, if any.
func (d *Document) Loaded() (Node, bool) {
	return d.loadedNode()
}

// List returns one page of documents.
func (d *Document) List(ctx context.Context, opts DocumentListOptions) (*Page, error) {
	resp, err := d.conn.Call(ctx, Request{Path: "documents", Query: listQuery(opts.Page, opts.PerPage, opts.Search, opts.State)})
	if err != nil {
		return nil, err
	}
	return normalizePage(resp, "documents", "document", "total_documents"), nil
}

// Count returns the number of documents and pages at the default page size.
func (d *Document) Count(ctx context.Context) (Count, error) {
	resp, err := d.conn.Call(ctx, Request{Path: "documents"})
	if err != nil {
		return Count{}, err
	}
	return pageCount(resp, "total_documents")
}

// BatchDetails fetches up to MaxBatchDetails documents in one call. Every guid must be non-empty.
func (d *Document) BatchDetails(ctx context.Context, guids []string) ([]Node, error) {
	if len(guids) == 0 {
		return []Node{}, nil
	}
	if len(guids) > MaxBatchDetails {
		return nil, NewInvalidArgumentError(fmt.Sprintf("batch details accepts at most %d guids, got %d", MaxBatchDetails, len(guids)))
	}
	if err := checkGUIDs(d.kind, guids); err != nil {
		return nil, err
	}
	resp, err := d.conn.Call(ctx, Request{Path: "documents/" + pathGUIDs(guids...) + "/batch_details"})
	if err != nil {
		return nil, err
	}
	return normalizeBatch(resp), nil
}

// Trash moves the document to the trash.
func (d *Document) Trash(ctx context.Context, guid string) (bool, error) {
	guid, err := d.resolveGUID(guid)
	if err != nil {
		return false, err
	}
	return d.postStatus(ctx, "documents/"+pathGUIDs(guid)+"/trash", nil, "has been trashed")
}

// ExtendExpiration extends the document's expiration date.
func (d *Document) ExtendExpiration(ctx context.Context, guid string) (bool, error) {
	guid, err := d.resolveGUID(guid)
	if err != nil {
		return false, err
	}
	return d.postStatus(ctx, "documents/"+pathGUIDs(guid)+"/extend_expiration", nil, "expiration extended")
}

// UpdateTags replaces the document's tags.
func (d *Document) UpdateTags(ctx context.Context, tags []Tag, guid string) (bool, error) {
	guid, err := d.resolveGUID(guid)
	if err != nil {
		return false, err
	}
	body, err := EncodeTagsBody(tags)
	if err != nil {
		return false, err
	}
	return d.postStatus(ctx, "documents/"+pathGUIDs(guid)+"/update_tags", body, "tags updated")
}

// Send uploads the file at path and sends it to the recipients in opts.
func (d *Document) Send(ctx context.Context, path string, opts SendOptions) (bool, error) {
	data, err := d.readDocumentData(path)
	if err != nil {
		return false, err
	}
	body, err := EncodeSendBody(data, opts)
	if err != nil {
		return false, err
	}
	return d.postStatus(ctx, "documents", body, "sent")
}

// UpdateCallback sets the URL the API calls when the document changes state.
func (d *Document) UpdateCallback(ctx context.Context, url string, guid string) (bool, error) {
	guid, err := d.resolveGUID(guid)
	if err != nil {
		return false, err
	}
	body, err := EncodeCallbackBody(url)
	if err != nil {
		return false, err
	}
	return d.postStatus(ctx, "documents/"+pathGUIDs(guid)+"/update_callback", body, "location updated")
}

// SignerLinks returns the embedded signing links of the document's pending signers.
func (d *Document) SignerLinks(ctx context.Context, guid string) ([]Node, error) {
	guid, err := d.resolveGUID(guid)
	if err != nil {
		return nil, err
	}
	resp, err := d.conn.Call(ctx, Request{Path: "documents/" + pathGUIDs(guid) + "/signer_links"})
	if err != nil {
		return nil, err
	}
	return singleOrList(resp.Get("document", "signer_links")), nil
}
