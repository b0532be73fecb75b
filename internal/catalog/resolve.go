package catalog

import "ocrd/pkg/types"

// Query is a client's language/model request. A nil field means the client
// did not supply the corresponding query parameter.
type Query struct {
	Language *string
	Model    *string
}

// Resolve maps a query against the catalog to one concrete record.
// It is pure and performs no I/O.
//
// Precedence: an explicit model must match exactly; a language with a single
// installed record always resolves to it; otherwise the unqualified (nil
// model) variant is the implicit default; anything else is ambiguous and the
// caller has to disambiguate.
func Resolve(q Query, c *Catalog, defaultLanguage string) (types.ModelRecord, error) {
	if q.Model != nil && q.Language == nil {
		return types.ModelRecord{}, modelWithoutLanguageError{}
	}

	language := defaultLanguage
	if q.Language != nil {
		language = *q.Language
	}

	candidates := c.ForLanguage(language)
	if len(candidates) == 0 {
		return types.ModelRecord{}, languageNotAvailableError{language: language}
	}

	if q.Model != nil {
		for _, r := range candidates {
			if r.Model != nil && *r.Model == *q.Model {
				return r, nil
			}
		}
		return types.ModelRecord{}, modelNotFoundError{model: *q.Model, language: language}
	}

	if len(candidates) == 1 {
		return candidates[0], nil
	}

	var unqualified []types.ModelRecord
	for _, r := range candidates {
		if r.Model == nil {
			unqualified = append(unqualified, r)
		}
	}
	if len(unqualified) == 1 {
		return unqualified[0], nil
	}
	return types.ModelRecord{}, ambiguousModelError{language: language}
}
