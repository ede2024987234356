package dsl

// Highlight requests highlighted snippets of matching text with
// search hits.
type Highlight struct {
	fields       []*HighlightField
	preTags      []string
	postTags     []string
	typ          string
	encoder      string
	requireMatch *bool
}

// NewHighlight creates and initializes a new Highlight.
func NewHighlight() *Highlight {
	return &Highlight{}
}

// Field adds fields to highlight.
func (h *Highlight) Field(fields ...*HighlightField) *Highlight {
	h.fields = append(h.fields, fields...)
	return h
}

// PreTags sets the tags inserted before highlighted text.
func (h *Highlight) PreTags(tags ...string) *Highlight {
	h.preTags = append(h.preTags, tags...)
	return h
}

// PostTags sets the tags inserted after highlighted text.
func (h *Highlight) PostTags(tags ...string) *Highlight {
	h.postTags = append(h.postTags, tags...)
	return h
}

// Type sets the highlighter: "unified" (default), "plain" or "fvh".
func (h *Highlight) Type(typ string) *Highlight {
	h.typ = typ
	return h
}

// Encoder sets how snippets are encoded: "default" or "html".
func (h *Highlight) Encoder(encoder string) *Highlight {
	h.encoder = encoder
	return h
}

// RequireMatch only highlights fields the query actually matched.
func (h *Highlight) RequireMatch(require bool) *Highlight {
	h.requireMatch = &require
	return h
}

// Source returns the JSON-serializable body of the highlight request.
func (h *Highlight) Source() (interface{}, error) {
	params := make(map[string]interface{})
	if len(h.preTags) > 0 {
		params["pre_tags"] = h.preTags
	}
	if len(h.postTags) > 0 {
		params["post_tags"] = h.postTags
	}
	if h.typ != "" {
		params["type"] = h.typ
	}
	if h.encoder != "" {
		params["encoder"] = h.encoder
	}
	if h.requireMatch != nil {
		params["require_field_match"] = *h.requireMatch
	}
	if len(h.fields) > 0 {
		fields := make(map[string]interface{}, len(h.fields))
		for _, f := range h.fields {
			src, err := f.source()
			if err != nil {
				return nil, err
			}
			fields[f.name] = src
		}
		params["fields"] = fields
	}
	return params, nil
}

// HighlightField configures highlighting for one field.
type HighlightField struct {
	name           string
	fragmentSize   *int
	numOfFragments *int
	fragmentOffset *int
	highlightQuery Query
	matchedFields  []string
	noMatchSize    *int
	typ            string
}

// NewHighlightField creates and initializes a new HighlightField.
func NewHighlightField(name string) *HighlightField {
	return &HighlightField{name: name}
}

// FragmentSize sets the size of highlighted fragments in characters.
func (f *HighlightField) FragmentSize(size int) *HighlightField {
	f.fragmentSize = &size
	return f
}

// NumOfFragments sets the maximum number of fragments to return.
func (f *HighlightField) NumOfFragments(n int) *HighlightField {
	f.numOfFragments = &n
	return f
}

// FragmentOffset sets the margin from which highlighting starts.
func (f *HighlightField) FragmentOffset(offset int) *HighlightField {
	f.fragmentOffset = &offset
	return f
}

// HighlightQuery highlights matches of a different query than the
// search query.
func (f *HighlightField) HighlightQuery(q Query) *HighlightField {
	f.highlightQuery = q
	return f
}

// MatchedFields combines matches on multiple fields into one highlight.
func (f *HighlightField) MatchedFields(fields ...string) *HighlightField {
	f.matchedFields = append(f.matchedFields, fields...)
	return f
}

// NoMatchSize returns this many leading characters when nothing matched.
func (f *HighlightField) NoMatchSize(size int) *HighlightField {
	f.noMatchSize = &size
	return f
}

// Type overrides the highlighter for this field.
func (f *HighlightField) Type(typ string) *HighlightField {
	f.typ = typ
	return f
}

func (f *HighlightField) source() (interface{}, error) {
	params := make(map[string]interface{})
	if f.fragmentSize != nil {
		params["fragment_size"] = *f.fragmentSize
	}
	if f.numOfFragments != nil {
		params["number_of_fragments"] = *f.numOfFragments
	}
	if f.fragmentOffset != nil {
		params["fragment_offset"] = *f.fragmentOffset
	}
	if f.highlightQuery != nil {
		src, err := f.highlightQuery.Source()
		if err != nil {
			return nil, err
		}
		params["highlight_query"] = src
	}
	if len(f.matchedFields) > 0 {
		params["matched_fields"] = f.matchedFields
	}
	if f.noMatchSize != nil {
		params["no_match_size"] = *f.noMatchSize
	}
	if f.typ != "" {
		params["type"] = f.typ
	}
	return params, nil
}
