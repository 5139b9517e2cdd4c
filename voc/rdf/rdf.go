// Package rdf contains constants of the RDF Concepts Vocabulary (RDF).
package rdf

import "github.com/cayleygraph/rdfstore/voc"

func init() {
	voc.RegisterPrefix(Prefix, NS)
}

const (
	NS     = `http://www.w3.org/1999/02/22-rdf-syntax-ns#`
	Prefix = `rdf:`
)

const (
	// Type is the subject is an instance of a class.
	Type = NS + `type`
	// Property is the class of RDF properties.
	Property = NS + `Property`
	// LangString is the datatype of language-tagged string values.
	LangString = NS + `langString`
	// XMLLiteral is the datatype of XML literal values.
	XMLLiteral = NS + `XMLLiteral`
	// Statement is the class of RDF statements.
	Statement = NS + `Statement`
	// Subject, Predicate and Object are the parts of a reified statement.
	Subject   = NS + `subject`
	Predicate = NS + `predicate`
	Object    = NS + `object`
	// Nil is the empty list.
	Nil   = NS + `nil`
	First = NS + `first`
	Rest  = NS + `rest`
)
