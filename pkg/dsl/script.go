package dsl

// Script describes an inline or stored script with its language and
// parameters. It is shared by the script query, script sort, scripted
// metric aggregations and scripted updates.
type Script struct {
	script string
	typ    string // "source" or "id"
	lang   string
	params map[string]interface{}
}

// NewScript creates an inline Script with the given source.
func NewScript(source string) *Script {
	return &Script{script: source, typ: "source"}
}

// NewScriptStored creates a Script referencing a stored script by ID.
func NewScriptStored(id string) *Script {
	return &Script{script: id, typ: "id"}
}

// Lang sets the script language, e.g. "painless".
func (s *Script) Lang(lang string) *Script {
	s.lang = lang
	return s
}

// Param adds a parameter made available to the script.
func (s *Script) Param(name string, value interface{}) *Script {
	if s.params == nil {
		s.params = make(map[string]interface{})
	}
	s.params[name] = value
	return s
}

// Params sets all parameters made available to the script.
func (s *Script) Params(params map[string]interface{}) *Script {
	s.params = params
	return s
}

// Source returns the JSON-serializable body of the script.
func (s *Script) Source() (interface{}, error) {
	params := map[string]interface{}{s.typ: s.script}
	if s.lang != "" {
		params["lang"] = s.lang
	}
	if len(s.params) > 0 {
		params["params"] = s.params
	}
	return params, nil
}

// ScriptQuery filters documents based on a script returning a boolean.
type ScriptQuery struct {
	script    *Script
	queryName string
}

// NewScriptQuery creates and initializes a new ScriptQuery.
func NewScriptQuery(script *Script) *ScriptQuery {
	return &ScriptQuery{script: script}
}

// QueryName sets the query name for the query.
func (q *ScriptQuery) QueryName(name string) *ScriptQuery {
	q.queryName = name
	return q
}

// Source returns the JSON-serializable body of the query.
func (q *ScriptQuery) Source() (interface{}, error) {
	script, err := q.script.Source()
	if err != nil {
		return nil, err
	}
	params := map[string]interface{}{"script": script}
	if q.queryName != "" {
		params["_name"] = q.queryName
	}
	return map[string]interface{}{"script": params}, nil
}
