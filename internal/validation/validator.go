// Package validation implements the client-side form contracts: declarative
// per-field rule lists, cross-field checks, and the password strength
// classifier. Validation is pure — it never performs I/O and never consults
// the backend; its job is to reject malformed input before any network call
// is attempted.
package validation

// Values holds the raw form input keyed by field name. Boolean inputs are
// carried as "true"/"false" strings.
type Values map[string]string

// Rule is a single (predicate, message) pair. Check receives the field's
// current value and the whole form, so cross-field rules can reference
// another field (e.g. password confirmation).
type Rule struct {
	Check   func(value string, form Values) bool
	Message string
}

// Field is a named input with an ordered rule list. Rules are evaluated in
// order and the first failing rule wins; later rules for the same field are
// not evaluated.
type Field struct {
	Name  string
	Rules []Rule
}

// Schema is an ordered set of fields forming one form contract. Schemas are
// stateless and safe for concurrent use.
type Schema struct {
	Fields []Field
}

// Result maps field name to the first failing rule's message. An empty
// result means the form is valid.
type Result map[string]string

// Valid reports whether no field failed.
func (r Result) Valid() bool { return len(r) == 0 }

// Validate evaluates every field of the schema against the form values.
// Missing keys are treated as empty strings.
func (s Schema) Validate(form Values) Result {
	result := Result{}
	for _, f := range s.Fields {
		value := form[f.Name]
		for _, rule := range f.Rules {
			if !rule.Check(value, form) {
				result[f.Name] = rule.Message
				break
			}
		}
	}
	return result
}
