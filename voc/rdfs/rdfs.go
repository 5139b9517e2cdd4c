// Package rdfs contains constants of the RDF Schema vocabulary (RDFS).
package rdfs

import "github.com/cayleygraph/rdfstore/voc"

func init() {
	voc.RegisterPrefix(Prefix, NS)
}

const (
	NS     = `http://www.w3.org/2000/01/rdf-schema#`
	Prefix = `rdfs:`
)

const (
	Class         = NS + `Class`
	Resource      = NS + `Resource`
	Literal       = NS + `Literal`
	Label         = NS + `label`
	Comment       = NS + `comment`
	SubClassOf    = NS + `subClassOf`
	SubPropertyOf = NS + `subPropertyOf`
	Domain        = NS + `domain`
	Range         = NS + `range`
)
