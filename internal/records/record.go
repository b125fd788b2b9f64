package records

// Record holds one organization's registry data prior to encoding. Values are
// loosely typed because the tiers populate whatever fields they managed to
// observe; no two records are guaranteed to share the same set of keys.
type Record map[string]any

// Field names shared between the tiers and the encoder.
const (
	FieldDocumentNumber  = "document_number"
	FieldEntityName      = "entity_name"
	FieldStatus          = "status"
	FieldEntityType      = "entity_type"
	FieldAddress1        = "address_1"
	FieldAddress2        = "address_2"
	FieldCity            = "city"
	FieldState           = "state"
	FieldZip             = "zip"
	FieldCountry         = "country"
	FieldFileDate        = "file_date"
	FieldRegisteredAgent = "registered_agent"
	FieldAgentAddress    = "agent_address"
	FieldAgentCity       = "agent_city"
	FieldAgentZip        = "agent_zip"
)

// Field returns the string value stored under key, or "" when the key is
// absent or holds a non-string value.
func (r Record) Field(key string) string {
	if r == nil {
		return ""
	}
	if s, ok := r[key].(string); ok {
		return s
	}
	return ""
}

// Set stores a string value, dropping empty values so absent and empty fields
// stay indistinguishable.
func (r Record) Set(key, value string) {
	if value == "" {
		return
	}
	r[key] = value
}
