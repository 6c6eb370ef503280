package rightsignature

// query.go encodes query arguments the way PHP's http_build_query does with PHP_QUERY_RFC3986,
// which is what the RightSignature API has always been called with.

import (
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// EncodeQuery builds a query string (without the leading "?") from args.
//
// Keys are emitted in sorted order. Slices expand to key[0]=a&key[1]=b and maps to key[sub]=v,
// recursively. Booleans encode as 1/0 and nil values are skipped.
func EncodeQuery(args map[string]any) string {
	var pairs []string
	for _, k := range sortedKeys(args) {
		pairs = appendQueryPairs(pairs, k, args[k])
	}
	return strings.Join(pairs, "&")
}

func appendQueryPairs(pairs []string, key string, value any) []string {
	if value == nil {
		return pairs
	}

	switch v := value.(type) {
	case string:
		return append(pairs, rawEscape(key)+"="+rawEscape(v))
	case bool:
		if v {
			return append(pairs, rawEscape(key)+"=1")
		}
		return append(pairs, rawEscape(key)+"=0")
	case int:
		return append(pairs, rawEscape(key)+"="+strconv.Itoa(v))
	case int64:
		return append(pairs, rawEscape(key)+"="+strconv.FormatInt(v, 10))
	case map[string]any:
		for _, k := range sortedKeys(v) {
			pairs = appendQueryPairs(pairs, key+"["+k+"]", v[k])
		}
		return pairs
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			pairs = appendQueryPairs(pairs, key+"["+strconv.Itoa(i)+"]", rv.Index(i).Interface())
		}
		return pairs
	case reflect.Map:
		keys := make([]string, 0, rv.Len())
		values := make(map[string]any, rv.Len())
		for _, mk := range rv.MapKeys() {
			k := fmt.Sprint(mk.Interface())
			keys = append(keys, k)
			values[k] = rv.MapIndex(mk).Interface()
		}
		sort.Strings(keys)
		for _, k := range keys {
			pairs = appendQueryPairs(pairs, key+"["+k+"]", values[k])
		}
		return pairs
	}

	return append(pairs, rawEscape(key)+"="+rawEscape(fmt.Sprint(value)))
}

// rawEscape percent-encodes s per RFC 3986 (space is %20, not +).
func rawEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
