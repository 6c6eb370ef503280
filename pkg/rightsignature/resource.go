package rightsignature

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/spf13/afero"
)

var fileNamePattern = regexp.MustCompile(`(?i)([a-z0-9_\-.?%=&]+)$`)

// resource holds the state shared by Template and Document: the sticky guid and the last loaded
// resource. It is not synchronized; confine each client to one call chain.
type resource struct {
	conn *Connection
	fs   afero.Fs

	// kind is the singular resource name ("template", "document")
	kind string

	guid   string
	loaded *Node
}

// resolveGUID picks the guid for an operation: the explicit argument, then the loaded resource's
// own guid, then the guid set with SetGUID.
func (r *resource) resolveGUID(guid string) (string, error) {
	if guid != "" {
		return guid, nil
	}
	if r.loaded != nil {
		if g := r.loaded.Get("guid").String(); g != "" {
			return g, nil
		}
	}
	if r.guid != "" {
		return r.guid, nil
	}
	return "", NewMissingIdentifierError(r.kind)
}

// resolveGUIDs resolves a guid list for multi-guid operations. No guids, or a single empty one,
// resolve like a single-guid operation. Any other empty entry is rejected.
func (r *resource) resolveGUIDs(guids []string) ([]string, error) {
	if len(guids) == 0 || (len(guids) == 1 && guids[0] == "") {
		guid, err := r.resolveGUID("")
		if err != nil {
			return nil, err
		}
		return []string{guid}, nil
	}
	if err := checkGUIDs(r.kind, guids); err != nil {
		return nil, err
	}
	return guids, nil
}

func checkGUIDs(kind string, guids []string) error {
	for _, g := range guids {
		if g == "" {
			return NewMissingIdentifierError(kind)
		}
	}
	return nil
}

// pathGUIDs escapes each guid as a path segment and joins them with commas.
func pathGUIDs(guids ...string) string {
	escaped := make([]string, len(guids))
	for i, g := range guids {
		escaped[i] = url.PathEscape(g)
	}
	return strings.Join(escaped, ",")
}

// store replaces the loaded resource; an empty node leaves nothing loaded.
func (r *resource) store(n Node) {
	if n.IsEmpty() {
		r.loaded = nil
		return
	}
	r.loaded = &n
}

func (r *resource) get(name string) (Node, error) {
	if r.loaded == nil {
		return Node{}, NewNoLoadedResourceError(r.kind)
	}
	if name == "" {
		return *r.loaded, nil
	}
	return r.loaded.Get(name), nil
}

func (r *resource) loadedNode() (Node, bool) {
	if r.loaded == nil {
		return Node{}, false
	}
	return *r.loaded, true
}

// fetch loads path and keeps the response's kind field when it is non-empty.
func (r *resource) fetch(ctx context.Context, guid, collection string) error {
	guid, err := r.resolveGUID(guid)
	if err != nil {
		return err
	}
	resp, err := r.conn.Call(ctx, Request{Path: collection + "/" + pathGUIDs(guid)})
	if err != nil {
		return err
	}
	if n := resp.Get(r.kind); !n.IsEmpty() {
		r.loaded = &n
	}
	return nil
}

// postStatus runs a POST whose outcome is reported in document.status, and reports whether
// that status contains want.
func (r *resource) postStatus(ctx context.Context, path string, body []byte, want string) (bool, error) {
	resp, err := r.conn.Call(ctx, Request{Path: path, Method: http.MethodPost, Body: body})
	if err != nil {
		return false, err
	}
	return strings.Contains(resp.Get("document", "status").String(), want), nil
}

// readDocumentData reads a local file and wraps it base64 encoded for upload.
func (r *resource) readDocumentData(path string) (*DocumentData, error) {
	match := fileNamePattern.FindStringSubmatch(path)
	if match == nil {
		return nil, NewInvalidArgumentError("no file name in path " + path)
	}

	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return nil, WrapFileError(err, "failed to read "+path)
	}

	return &DocumentData{
		Type:     "base64",
		Filename: match[1],
		Value:    base64.StdEncoding.EncodeToString(data),
	}, nil
}
