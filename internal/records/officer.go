package records

// Officer is one officer or director entry attached to a record.
type Officer struct {
	Title string
	Name  string
}

// DefaultOfficerTitle is applied when an officer arrives as a bare name.
const DefaultOfficerTitle = "DIR"

// officerKeys lists the alternate keys a tier may have stored officers under,
// in lookup priority order.
var officerKeys = []string{"officers", "board_members", "directors"}

// Officers returns the normalized officer list for the record. The first
// non-empty list found under the alternate keys wins; a nil result means the
// record carries no officer data at all.
func (r Record) Officers() []Officer {
	if r == nil {
		return nil
	}
	for _, key := range officerKeys {
		if officers := normalizeOfficers(r[key]); len(officers) > 0 {
			return officers
		}
	}
	return nil
}

// SetOfficers stores a normalized officer list under the primary key.
func (r Record) SetOfficers(officers []Officer) {
	if len(officers) == 0 {
		return
	}
	r["officers"] = officers
}

func normalizeOfficers(value any) []Officer {
	switch v := value.(type) {
	case nil:
		return nil
	case []Officer:
		return v
	case []string:
		out := make([]Officer, 0, len(v))
		for _, name := range v {
			if name == "" {
				continue
			}
			out = append(out, Officer{Title: DefaultOfficerTitle, Name: name})
		}
		return out
	case []any:
		out := make([]Officer, 0, len(v))
		for _, entry := range v {
			if officer, ok := normalizeOfficer(entry); ok {
				out = append(out, officer)
			}
		}
		return out
	default:
		return nil
	}
}

func normalizeOfficer(entry any) (Officer, bool) {
	switch e := entry.(type) {
	case Officer:
		return e, e.Name != ""
	case string:
		if e == "" {
			return Officer{}, false
		}
		return Officer{Title: DefaultOfficerTitle, Name: e}, true
	case map[string]any:
		officer := Officer{
			Title: stringValue(e["title"]),
			Name:  stringValue(e["name"]),
		}
		if officer.Title == "" {
			officer.Title = DefaultOfficerTitle
		}
		return officer, officer.Name != ""
	case map[string]string:
		officer := Officer{Title: e["title"], Name: e["name"]}
		if officer.Title == "" {
			officer.Title = DefaultOfficerTitle
		}
		return officer, officer.Name != ""
	default:
		return Officer{}, false
	}
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}
