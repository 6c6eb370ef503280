package rightsignature

// normalize.go resolves the API's habit of returning a single list item as an object
// and several as an array.

// Page is one page of a template or document listing.
type Page struct {
	// Items holds the listed resources in API order. It is empty when the page has no collection.
	Items []Node

	// Raw is the response envelope exactly as returned.
	Raw Node

	Total       int
	TotalPages  int
	CurrentPage int
	PerPage     int
}

// Count summarises a listing.
type Count struct {
	Total      int `mapstructure:"total" json:"total"`
	TotalPages int `mapstructure:"total_pages" json:"total_pages"`
}

// normalizePage builds a Page from a listing response.
//
// collection is the page key holding the items ("templates"), item the singular key
// ("template") and totalKey the page counter ("total_templates").
func normalizePage(resp Node, collection, item, totalKey string) *Page {
	page := resp.Get("page")
	p := &Page{
		Raw:         resp,
		Total:       page.Get(totalKey).Int(),
		TotalPages:  page.Get("total_pages").Int(),
		CurrentPage: page.Get("current_page").Int(),
		PerPage:     page.Get("per_page").Int(),
	}

	coll := page.Get(collection)
	if coll.IsEmpty() {
		return p
	}

	// a single item is usually nested under the item key but can also arrive in an array
	switch {
	case coll.IsArray():
		p.Items = coll.Items()
	case coll.Get(item).Exists():
		p.Items = singleOrList(coll.Get(item))
	default:
		p.Items = []Node{coll}
	}
	return p
}

// normalizeBatch returns the documents of a batch_details response as a list.
func normalizeBatch(resp Node) []Node {
	docs := resp.Get("documents")
	single := docs.Get("document")

	switch {
	case single.IsEmpty() && !docs.IsEmpty():
		return singleOrList(docs)
	case !single.IsEmpty():
		return singleOrList(single)
	}
	return []Node{}
}

// singleOrList returns the elements of an array, or n as a one element list.
func singleOrList(n Node) []Node {
	if n.IsArray() {
		return n.Items()
	}
	if !n.Exists() {
		return []Node{}
	}
	return []Node{n}
}

// pageCount extracts the counters of an unfiltered listing.
func pageCount(resp Node, totalKey string) (Count, error) {
	page := resp.Get("page")
	var c Count
	fields := map[string]any{
		"total":       page.Get(totalKey).Raw(),
		"total_pages": page.Get("total_pages").Raw(),
	}
	if err := NewNode(fields).Decode(&c); err != nil {
		return Count{}, WrapParseError(err, "unexpected page counters")
	}
	return c, nil
}
