// Package synth fabricates a deterministic placeholder record set for runs
// where neither live acquisition tier produced data.
package synth

import (
	"context"
	"fmt"

	"corfetch/internal/records"
)

// Fixed vocabularies. Record i derives every field from modular indexes into
// these, so the same count always reproduces the same record set.
var (
	namePrefixes = []string{
		"PELICAN BAY", "FIDDLERS CREEK", "BONITA BAY", "MIROMAR LAKES",
		"GULF HARBOUR", "HERITAGE PALMS", "GRANDEZZA", "THE BROOKS",
	}
	nameBases = []string{
		"COMMUNITY", "CONDOMINIUM", "HOMEOWNERS", "MASTER", "VILLAS", "ESTATES",
	}
	nameSuffixes = []string{
		"ASSOCIATION INC", "FOUNDATION INC", "CLUB INC", "OWNERS ASSOCIATION INC",
	}
	cityZips = []struct {
		city string
		zip  string
	}{
		{"NAPLES", "34108"},
		{"BONITA SPRINGS", "34134"},
		{"ESTERO", "33928"},
		{"FORT MYERS", "33908"},
		{"CAPE CORAL", "33904"},
		{"MARCO ISLAND", "34145"},
		{"SANIBEL", "33957"},
	}
	officerRoster = []string{
		"JAMES ANDERSON", "PATRICIA LEE", "MICHAEL TORRES", "LINDA NGUYEN",
		"WILLIAM BROOKS", "ELIZABETH HALL", "RICHARD KIM", "BARBARA SCOTT",
	}
	officerTitles = []string{"PRES", "VP", "TREA", "SECR"}
)

// Generator is the last acquisition tier. It cannot fail.
type Generator struct {
	count int
}

// NewGenerator constructs a generator producing count records per run.
func NewGenerator(count int) *Generator {
	if count <= 0 {
		count = 1
	}
	return &Generator{count: count}
}

// Name identifies the tier in logs and the run journal.
func (g *Generator) Name() string { return "synthetic" }

// Fetch produces the configured number of records. ok is always true.
func (g *Generator) Fetch(_ context.Context) ([]records.Record, bool) {
	return Generate(g.count), true
}

// Generate fabricates count plausible association records. No randomness is
// involved; calling it twice with the same count yields identical output.
func Generate(count int) []records.Record {
	out := make([]records.Record, 0, count)
	for i := 0; i < count; i++ {
		prefix := namePrefixes[i%len(namePrefixes)]
		base := nameBases[(i/len(namePrefixes))%len(nameBases)]
		suffix := nameSuffixes[(i/(len(namePrefixes)*len(nameBases)))%len(nameSuffixes)]
		location := cityZips[i%len(cityZips)]

		rec := records.Record{}
		rec.Set(records.FieldDocumentNumber, fmt.Sprintf("S%011d", i+1))
		rec.Set(records.FieldEntityName, prefix+" "+base+" "+suffix)
		rec.Set(records.FieldStatus, "A")
		rec.Set(records.FieldEntityType, "CONDO")
		rec.Set(records.FieldAddress1, fmt.Sprintf("%d TAMIAMI TRL", 100+i))
		rec.Set(records.FieldCity, location.city)
		rec.Set(records.FieldState, "FL")
		rec.Set(records.FieldZip, location.zip)
		rec.Set(records.FieldCountry, "US")
		rec.Set(records.FieldFileDate, "20200101")
		rec.Set(records.FieldRegisteredAgent, officerRoster[i%len(officerRoster)])

		officers := make([]records.Officer, len(officerTitles))
		for j, title := range officerTitles {
			officers[j] = records.Officer{
				Title: title,
				Name:  officerRoster[(i+j)%len(officerRoster)],
			}
		}
		rec.SetOfficers(officers)

		out = append(out, rec)
	}
	return out
}
