// Package scrape implements the second acquisition tier: paginated queries
// against the registry search interface, parsed by a small streaming state
// machine.
package scrape

import (
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"corfetch/internal/records"
)

type rowState int

const (
	outsideRow rowState = iota
	inRow
)

// rowClasses are the two result-row styles the search interface emits.
var rowClasses = map[string]struct{}{
	"row-even": {},
	"row-odd":  {},
}

// docNumberRE extracts the document number embedded in a detail link.
var docNumberRE = regexp.MustCompile(`documentNumber=([A-Za-z0-9]+)`)

// minNameLength is the shortest text fragment accepted as an entity name;
// shorter fragments are column decorations.
const minNameLength = 6

// rowMachine accumulates records from one search response. One instance per
// response; it holds no I/O.
type rowMachine struct {
	state   rowState
	current records.Record
	out     []records.Record
}

func newRowMachine() *rowMachine {
	return &rowMachine{current: records.Record{}}
}

// startRow transitions outside -> in on a recognized result row.
func (m *rowMachine) startRow() {
	if m.state == inRow {
		return
	}
	m.state = inRow
	m.current = records.Record{}
}

// link captures the document number from the first matching detail link.
func (m *rowMachine) link(href string) {
	if m.state != inRow || m.current.Field(records.FieldDocumentNumber) != "" {
		return
	}
	if match := docNumberRE.FindStringSubmatch(href); match != nil {
		m.current.Set(records.FieldDocumentNumber, match[1])
	}
}

// text stores the first sufficiently long fragment as the entity name.
func (m *rowMachine) text(fragment string) {
	if m.state != inRow || m.current.Field(records.FieldEntityName) != "" {
		return
	}
	if len(fragment) >= minNameLength {
		m.current.Set(records.FieldEntityName, fragment)
	}
}

// endRow transitions in -> outside, appending the accumulated record iff an
// identifier was captured. The in-progress record is always reset.
func (m *rowMachine) endRow() {
	if m.state != inRow {
		return
	}
	if m.current.Field(records.FieldDocumentNumber) != "" {
		m.out = append(m.out, m.current)
	}
	m.current = records.Record{}
	m.state = outsideRow
}

func (m *rowMachine) records() []records.Record {
	return m.out
}

// Parse runs the row machine over one search response body.
func Parse(r io.Reader) []records.Record {
	tokenizer := html.NewTokenizer(r)
	machine := newRowMachine()
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return machine.records()
		case html.StartTagToken:
			token := tokenizer.Token()
			switch token.Data {
			case "tr":
				if hasRowClass(token) {
					machine.startRow()
				}
			case "a":
				if href := attrValue(token, "href"); href != "" {
					machine.link(href)
				}
			}
		case html.TextToken:
			machine.text(strings.TrimSpace(string(tokenizer.Text())))
		case html.EndTagToken:
			if tokenizer.Token().Data == "tr" {
				machine.endRow()
			}
		}
	}
}

func hasRowClass(token html.Token) bool {
	for _, class := range strings.Fields(attrValue(token, "class")) {
		if _, ok := rowClasses[class]; ok {
			return true
		}
	}
	return false
}

func attrValue(token html.Token, name string) string {
	for _, attr := range token.Attr {
		if attr.Key == name {
			return attr.Val
		}
	}
	return ""
}
