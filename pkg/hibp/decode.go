package hibp

import (
	"bytes"
	"encoding/json"

	"github.com/pwnwatch-hq/pwnwatch/internal/domain"
)

// parseTree decodes a body into a generic JSON tree. Numbers are kept as
// json.Number so count fields can be range-checked without float rounding.
func parseTree(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, &ParseError{Snippet: snippet(body), Err: err}
	}
	return tree, nil
}

// recordObjects normalizes the two top-level shapes record endpoints answer
// with: a single object becomes a one-element batch, an array must hold only
// objects.
func recordObjects(tree any) ([]map[string]any, error) {
	switch v := tree.(type) {
	case map[string]any:
		return []map[string]any{v}, nil
	case []any:
		objs := make([]map[string]any, 0, len(v))
		for _, item := range v {
			obj, ok := item.(map[string]any)
			if !ok {
				return nil, &ShapeError{Want: "array of objects", Value: item}
			}
			objs = append(objs, obj)
		}
		return objs, nil
	default:
		return nil, &ShapeError{Want: "object or array of objects", Value: v}
	}
}

// requireString returns the named field as a string. Missing and null are
// both reported as missing.
func requireString(obj map[string]any, field string) (string, error) {
	raw, ok := obj[field]
	if !ok || raw == nil {
		return "", &SchemaError{Field: field}
	}
	s, ok := raw.(string)
	if !ok {
		return "", &SchemaError{Field: field, Value: raw}
	}
	return s, nil
}

// optionalString returns nil when the field is absent or null, and a
// SchemaError when it is present with a non-string value. Optional means the
// field may be left out, not that a wrong type is tolerated.
func optionalString(obj map[string]any, field string) (*string, error) {
	raw, ok := obj[field]
	if !ok || raw == nil {
		return nil, nil
	}
	s, ok := raw.(string)
	if !ok {
		return nil, &SchemaError{Field: field, Value: raw}
	}
	return &s, nil
}

func optionalBool(obj map[string]any, field string) (*bool, error) {
	raw, ok := obj[field]
	if !ok || raw == nil {
		return nil, nil
	}
	b, ok := raw.(bool)
	if !ok {
		return nil, &SchemaError{Field: field, Value: raw}
	}
	return &b, nil
}

// countValue narrows a raw JSON value to a non-negative integer. Fractions,
// negatives, and non-numbers all fail the same way.
func countValue(field string, raw any) (int64, error) {
	num, ok := raw.(json.Number)
	if !ok {
		return 0, &SchemaError{Field: field, Value: raw}
	}
	n, err := num.Int64()
	if err != nil || n < 0 {
		return 0, &SchemaError{Field: field, Value: raw}
	}
	return n, nil
}

func requireCount(obj map[string]any, field string) (int64, error) {
	raw, ok := obj[field]
	if !ok || raw == nil {
		return 0, &SchemaError{Field: field}
	}
	return countValue(field, raw)
}

func optionalCount(obj map[string]any, field string) (*int64, error) {
	raw, ok := obj[field]
	if !ok || raw == nil {
		return nil, nil
	}
	n, err := countValue(field, raw)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// optionalStringSlice returns nil when the field is absent or null. Every
// element must be a string.
func optionalStringSlice(obj map[string]any, field string) ([]string, error) {
	raw, ok := obj[field]
	if !ok || raw == nil {
		return nil, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, &SchemaError{Field: field, Value: raw}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, &SchemaError{Field: field, Value: item}
		}
		out = append(out, s)
	}
	return out, nil
}

// decodeBreach maps one record object onto a Breach. Name is the only field
// the service guarantees; a truncated account lookup sends nothing else.
func decodeBreach(obj map[string]any) (domain.Breach, error) {
	name, err := requireString(obj, "Name")
	if err != nil {
		return domain.Breach{}, err
	}
	if name == "" {
		return domain.Breach{}, &SchemaError{Field: "Name", Value: name}
	}
	b := domain.Breach{Name: name}
	if b.Title, err = optionalString(obj, "Title"); err != nil {
		return domain.Breach{}, err
	}
	if b.Domain, err = optionalString(obj, "Domain"); err != nil {
		return domain.Breach{}, err
	}
	if b.BreachDate, err = optionalString(obj, "BreachDate"); err != nil {
		return domain.Breach{}, err
	}
	if b.AddedDate, err = optionalString(obj, "AddedDate"); err != nil {
		return domain.Breach{}, err
	}
	if b.PwnCount, err = optionalCount(obj, "PwnCount"); err != nil {
		return domain.Breach{}, err
	}
	if b.Description, err = optionalString(obj, "Description"); err != nil {
		return domain.Breach{}, err
	}
	if b.DataClasses, err = optionalStringSlice(obj, "DataClasses"); err != nil {
		return domain.Breach{}, err
	}
	if b.IsVerified, err = optionalBool(obj, "IsVerified"); err != nil {
		return domain.Breach{}, err
	}
	if b.IsSensitive, err = optionalBool(obj, "IsSensitive"); err != nil {
		return domain.Breach{}, err
	}
	if b.IsRetired, err = optionalBool(obj, "IsRetired"); err != nil {
		return domain.Breach{}, err
	}
	return b, nil
}

// decodeBreaches turns a response body into breach records. Decoding is all
// or nothing: one bad record fails the whole batch.
func decodeBreaches(body []byte) ([]domain.Breach, error) {
	tree, err := parseTree(body)
	if err != nil {
		return nil, err
	}
	objs, err := recordObjects(tree)
	if err != nil {
		return nil, err
	}
	breaches := make([]domain.Breach, 0, len(objs))
	for _, obj := range objs {
		b, err := decodeBreach(obj)
		if err != nil {
			return nil, err
		}
		breaches = append(breaches, b)
	}
	return breaches, nil
}

func decodePaste(obj map[string]any) (domain.Paste, error) {
	source, err := requireString(obj, "Source")
	if err != nil {
		return domain.Paste{}, err
	}
	id, err := requireString(obj, "Id")
	if err != nil {
		return domain.Paste{}, err
	}
	count, err := requireCount(obj, "EmailCount")
	if err != nil {
		return domain.Paste{}, err
	}
	p := domain.Paste{Source: source, ID: id, EmailCount: count}
	if p.Title, err = optionalString(obj, "Title"); err != nil {
		return domain.Paste{}, err
	}
	if p.Date, err = optionalString(obj, "Date"); err != nil {
		return domain.Paste{}, err
	}
	return p, nil
}

// decodePastes turns a response body into paste records. The service answers
// "no pastes" with an empty body rather than an empty array, so that case
// never reaches the JSON parser.
func decodePastes(body []byte) ([]domain.Paste, error) {
	if len(body) == 0 {
		return nil, nil
	}
	tree, err := parseTree(body)
	if err != nil {
		return nil, err
	}
	objs, err := recordObjects(tree)
	if err != nil {
		return nil, err
	}
	pastes := make([]domain.Paste, 0, len(objs))
	for _, obj := range objs {
		p, err := decodePaste(obj)
		if err != nil {
			return nil, err
		}
		pastes = append(pastes, p)
	}
	return pastes, nil
}

// decodeDataClasses turns a response body into the data-class taxonomy, a
// bare array of strings in the service's alphabetical order.
func decodeDataClasses(body []byte) ([]domain.DataClass, error) {
	tree, err := parseTree(body)
	if err != nil {
		return nil, err
	}
	items, ok := tree.([]any)
	if !ok {
		return nil, &ShapeError{Want: "array of strings", Value: tree}
	}
	classes := make([]domain.DataClass, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, &SchemaError{Field: "DataClasses", Value: item}
		}
		classes = append(classes, s)
	}
	return classes, nil
}
