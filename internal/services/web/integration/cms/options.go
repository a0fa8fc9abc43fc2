package cms

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// PopulateAll asks the CMS to expand every relation one level deep.
const PopulateAll = "*"

// Options shape one content query.
type Options struct {
	// Locale defaults to the client's default locale when blank.
	Locale string
	// Populate is PopulateAll, another raw string, or any value that is sent
	// JSON-encoded. Nil means PopulateAll.
	Populate any
	// Filters are sent as filters[key]=value in the given order.
	Filters []Filter
	// Sort entries are field:direction and keep their order.
	Sort       []string
	Pagination Pagination
}

// Filter is one equality constraint.
type Filter struct {
	Key   string
	Value string
}

// Eq builds a filter from any scalar value.
func Eq(key string, value any) Filter {
	return Filter{Key: key, Value: fmt.Sprint(value)}
}

// Pagination is sent only for positive values.
type Pagination struct {
	Page     int
	PageSize int
}

// Fields populates the named relations. It encodes as an object with each
// field set to true, keeping the declared order.
type Fields []string

// MarshalJSON implements json.Marshaler.
func (f Fields) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(field)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteString(":true")
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// encodeQuery renders options as a query string. Parameter order follows
// locale, populate, filters, sort, pagination.
func encodeQuery(opts Options, defaultLocale string) (string, error) {
	var q query

	locale := strings.TrimSpace(opts.Locale)
	if locale == "" {
		locale = defaultLocale
	}
	q.add("locale", locale)

	populate, err := encodePopulate(opts.Populate)
	if err != nil {
		return "", err
	}
	q.add("populate", populate)

	for _, filter := range opts.Filters {
		q.add("filters["+filter.Key+"]", filter.Value)
	}
	for i, sort := range opts.Sort {
		q.add("sort["+strconv.Itoa(i)+"]", sort)
	}
	if opts.Pagination.Page > 0 {
		q.add("pagination[page]", strconv.Itoa(opts.Pagination.Page))
	}
	if opts.Pagination.PageSize > 0 {
		q.add("pagination[pageSize]", strconv.Itoa(opts.Pagination.PageSize))
	}
	return q.String(), nil
}

func encodePopulate(populate any) (string, error) {
	switch value := populate.(type) {
	case nil:
		return PopulateAll, nil
	case string:
		if strings.TrimSpace(value) == "" {
			return PopulateAll, nil
		}
		return value, nil
	default:
		encoded, err := json.Marshal(value)
		if err != nil {
			return "", fmt.Errorf("encode populate: %w", err)
		}
		return string(encoded), nil
	}
}

// query is an insertion-ordered url.Values.
type query struct {
	parts []string
}

func (q *query) add(key string, value string) {
	q.parts = append(q.parts, url.QueryEscape(key)+"="+url.QueryEscape(value))
}

func (q *query) String() string {
	return strings.Join(q.parts, "&")
}
