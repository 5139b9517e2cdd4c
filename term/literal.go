// Copyright 2026 The Cayley Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package term

import (
	"bytes"
	"encoding/xml"
	"io"
	"math/big"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/cayleygraph/rdfstore/voc/rdf"
	"github.com/cayleygraph/rdfstore/voc/xsd"
)

// Literal is a lexical value with a datatype and an optional language tag
// (ex: "name"@en, "5"^^<http://www.w3.org/2001/XMLSchema#int>).
type Literal struct {
	Lexical  string
	Datatype IRI
	Language string
}

// NewLiteral creates an xsd:string literal.
func NewLiteral(lexical string) Literal {
	return Literal{Lexical: lexical, Datatype: xsd.String}
}

// NewLangLiteral creates a language-tagged literal. The tag is lower-cased.
func NewLangLiteral(lexical, lang string) (Literal, error) {
	if !validLang(lang) {
		return Literal{}, &ShapeError{Role: "language", Value: lang, Expected: "BCP47 language tag"}
	}
	return Literal{Lexical: lexical, Datatype: rdf.LangString, Language: strings.ToLower(lang)}, nil
}

// NewTypedLiteral creates a literal with an explicit datatype.
// An empty datatype means xsd:string.
func NewTypedLiteral(lexical string, datatype IRI) Literal {
	if datatype == "" {
		datatype = xsd.String
	}
	return Literal{Lexical: lexical, Datatype: datatype}
}

func validLang(s string) bool {
	if s == "" {
		return false
	}
	for i, part := range strings.Split(s, "-") {
		if part == "" || len(part) > 8 {
			return false
		}
		for _, r := range part {
			switch {
			case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			case r >= '0' && r <= '9' && i > 0:
			default:
				return false
			}
		}
	}
	return true
}

func (Literal) Kind() Kind { return KindLiteral }
func (Literal) isTerm()    {}

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func (l Literal) String() string {
	s := `"` + literalEscaper.Replace(l.Lexical) + `"`
	switch {
	case l.Language != "":
		return s + "@" + l.Language
	case l.Datatype != "" && l.Datatype != xsd.String:
		return s + "^^" + l.Datatype.String()
	}
	return s
}

// datatype returns the effective datatype, filling in the defaults for
// literals built as composite literals.
func (l Literal) datatype() IRI {
	switch {
	case l.Language != "":
		return rdf.LangString
	case l.Datatype == "":
		return xsd.String
	}
	return l.Datatype
}

// Equal reports whether two literals have the same datatype and equal
// content, as decided by the comparator registered for the datatype.
func (l Literal) Equal(o Literal) bool {
	dt := l.datatype()
	if dt != o.datatype() {
		return false
	}
	return comparatorFor(dt)(l, o)
}

// Comparator decides content equality of two literals of the same datatype.
type Comparator func(a, b Literal) bool

var (
	compMu      sync.RWMutex
	comparators = make(map[IRI]Comparator)
)

// RegisterComparator sets the content comparator for a datatype,
// replacing any existing one.
func RegisterComparator(datatype IRI, fn Comparator) {
	compMu.Lock()
	comparators[datatype] = fn
	compMu.Unlock()
}

func comparatorFor(dt IRI) Comparator {
	compMu.RLock()
	fn, ok := comparators[dt]
	compMu.RUnlock()
	if !ok {
		return lexicalEqual
	}
	return fn
}

func lexicalEqual(a, b Literal) bool {
	return a.Lexical == b.Lexical && strings.EqualFold(a.Language, b.Language)
}

func init() {
	for _, dt := range []IRI{
		xsd.Integer, xsd.Long, xsd.Int, xsd.Short, xsd.Byte,
		xsd.NonNegativeInteger, xsd.NonPositiveInteger,
		xsd.PositiveInteger, xsd.NegativeInteger,
		xsd.UnsignedLong, xsd.UnsignedInt, xsd.UnsignedShort, xsd.UnsignedByte,
	} {
		RegisterComparator(dt, integerEqual)
	}
	RegisterComparator(xsd.Decimal, decimalEqual)
	RegisterComparator(xsd.Double, floatEqual)
	RegisterComparator(xsd.Float, floatEqual)
	RegisterComparator(xsd.Boolean, booleanEqual)
	RegisterComparator(rdf.XMLLiteral, xmlEqual)
}

// Numeric and boolean comparators fall back to lexical comparison when
// either side is not a valid lexical form for the datatype.

func integerEqual(a, b Literal) bool {
	x, ok1 := new(big.Int).SetString(strings.TrimPrefix(strings.TrimSpace(a.Lexical), "+"), 10)
	y, ok2 := new(big.Int).SetString(strings.TrimPrefix(strings.TrimSpace(b.Lexical), "+"), 10)
	if !ok1 || !ok2 {
		return lexicalEqual(a, b)
	}
	return x.Cmp(y) == 0
}

func decimalEqual(a, b Literal) bool {
	x, ok1 := new(big.Rat).SetString(strings.TrimSpace(a.Lexical))
	y, ok2 := new(big.Rat).SetString(strings.TrimSpace(b.Lexical))
	if !ok1 || !ok2 {
		return lexicalEqual(a, b)
	}
	return x.Cmp(y) == 0
}

func floatEqual(a, b Literal) bool {
	x, err1 := strconv.ParseFloat(strings.TrimSpace(a.Lexical), 64)
	y, err2 := strconv.ParseFloat(strings.TrimSpace(b.Lexical), 64)
	if err1 != nil || err2 != nil {
		return lexicalEqual(a, b)
	}
	return x == y
}

func parseBool(s string) (bool, bool) {
	switch strings.TrimSpace(s) {
	case "true", "1":
		return true, true
	case "false", "0":
		return false, true
	}
	return false, false
}

func booleanEqual(a, b Literal) bool {
	x, ok1 := parseBool(a.Lexical)
	y, ok2 := parseBool(b.Lexical)
	if !ok1 || !ok2 {
		return lexicalEqual(a, b)
	}
	return x == y
}

// xmlEqual compares the parsed structure of two XML fragments: element
// names, sorted attributes, non-blank character data, comments and
// processing instructions.
func xmlEqual(a, b Literal) bool {
	x, err1 := xmlTokens(a.Lexical)
	y, err2 := xmlTokens(b.Lexical)
	if err1 != nil || err2 != nil {
		return lexicalEqual(a, b)
	}
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

func xmlTokens(s string) ([]string, error) {
	dec := xml.NewDecoder(strings.NewReader(s))
	dec.Strict = false
	var out []string
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return out, nil
		} else if err != nil {
			return nil, err
		}
		switch tok := tok.(type) {
		case xml.StartElement:
			attrs := make([]string, 0, len(tok.Attr))
			for _, a := range tok.Attr {
				attrs = append(attrs, a.Name.Space+":"+a.Name.Local+"="+a.Value)
			}
			sort.Strings(attrs)
			out = append(out, "<"+tok.Name.Space+":"+tok.Name.Local+" "+strings.Join(attrs, " "))
		case xml.EndElement:
			out = append(out, "</"+tok.Name.Space+":"+tok.Name.Local)
		case xml.CharData:
			if t := bytes.TrimSpace(tok); len(t) != 0 {
				out = append(out, "#"+string(t))
			}
		case xml.Comment:
			out = append(out, "!"+string(tok))
		case xml.ProcInst:
			out = append(out, "?"+tok.Target+" "+string(tok.Inst))
		}
	}
}
