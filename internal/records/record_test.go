package records

import (
	"reflect"
	"strings"
	"testing"
)

func TestFieldReturnsEmptyForMissingOrNonString(t *testing.T) {
	rec := Record{"count": 7}
	if got := rec.Field("missing"); got != "" {
		t.Fatalf("Field(missing) = %q", got)
	}
	if got := rec.Field("count"); got != "" {
		t.Fatalf("Field(non-string) = %q", got)
	}
	var nilRec Record
	if got := nilRec.Field(FieldEntityName); got != "" {
		t.Fatalf("Field on nil record = %q", got)
	}
}

func TestSetDropsEmptyValues(t *testing.T) {
	rec := Record{}
	rec.Set(FieldEntityName, "")
	if _, ok := rec[FieldEntityName]; ok {
		t.Fatal("empty value was stored")
	}
	rec.Set(FieldEntityName, "OAK HOA")
	if got := rec.Field(FieldEntityName); got != "OAK HOA" {
		t.Fatalf("Field = %q", got)
	}
}

func TestOfficersKeyPriority(t *testing.T) {
	rec := Record{
		"directors":     []Officer{{Title: "PRES", Name: "DIRECTOR"}},
		"board_members": []Officer{{Title: "PRES", Name: "BOARD MEMBER"}},
	}
	officers := rec.Officers()
	if len(officers) != 1 || officers[0].Name != "BOARD MEMBER" {
		t.Fatalf("Officers = %+v, want board_members to win", officers)
	}

	rec["officers"] = []Officer{{Title: "PRES", Name: "PRIMARY"}}
	officers = rec.Officers()
	if len(officers) != 1 || officers[0].Name != "PRIMARY" {
		t.Fatalf("Officers = %+v, want officers key to win", officers)
	}
}

func TestOfficersSkipsEmptyListForNextKey(t *testing.T) {
	rec := Record{
		"officers":  []Officer{},
		"directors": []Officer{{Title: "TREA", Name: "FALLBACK"}},
	}
	officers := rec.Officers()
	if len(officers) != 1 || officers[0].Name != "FALLBACK" {
		t.Fatalf("Officers = %+v, want fallback to directors", officers)
	}
}

func TestOfficersNormalizesBareScalars(t *testing.T) {
	rec := Record{"officers": []any{"JANE DOE", map[string]any{"title": "PRES", "name": "JOHN ROE"}, 42}}
	officers := rec.Officers()
	want := []Officer{
		{Title: DefaultOfficerTitle, Name: "JANE DOE"},
		{Title: "PRES", Name: "JOHN ROE"},
	}
	if !reflect.DeepEqual(officers, want) {
		t.Fatalf("Officers = %+v, want %+v", officers, want)
	}
}

func TestOfficersStringSlice(t *testing.T) {
	rec := Record{"board_members": []string{"A PERSON", ""}}
	officers := rec.Officers()
	if len(officers) != 1 || officers[0].Title != DefaultOfficerTitle {
		t.Fatalf("Officers = %+v", officers)
	}
}

func TestOfficersNilWhenAbsent(t *testing.T) {
	if officers := (Record{}).Officers(); officers != nil {
		t.Fatalf("Officers = %+v, want nil", officers)
	}
}

func TestFromTableMapsAliases(t *testing.T) {
	input := strings.Join([]string{
		"Doc Number,Corporation Name,City,Zip",
		"M001,OAK HOA,NAPLES,34108",
		"M002,PINE CONDO,ESTERO,33928",
	}, "\n")

	recs, err := FromTable(strings.NewReader(input))
	if err != nil {
		t.Fatalf("FromTable: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if got := recs[0].Field(FieldDocumentNumber); got != "M001" {
		t.Errorf("document number = %q", got)
	}
	if got := recs[0].Field(FieldEntityName); got != "OAK HOA" {
		t.Errorf("entity name = %q", got)
	}
	if got := recs[1].Field(FieldCity); got != "ESTERO" {
		t.Errorf("city = %q", got)
	}
}

func TestFromTableSkipsRaggedRows(t *testing.T) {
	input := "name,city\nOAK HOA,NAPLES\nBROKEN ROW\nPINE CONDO,ESTERO\n"
	recs, err := FromTable(strings.NewReader(input))
	if err != nil {
		t.Fatalf("FromTable: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2 (ragged row skipped)", len(recs))
	}
}

func TestFromTableEmptyPayload(t *testing.T) {
	if _, err := FromTable(strings.NewReader("")); err == nil {
		t.Fatal("expected error for empty payload")
	}
}
