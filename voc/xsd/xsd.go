// Package xsd contains constants of the W3C XML Schema Definition Language datatypes.
package xsd

import "github.com/cayleygraph/rdfstore/voc"

func init() {
	voc.RegisterPrefix(Prefix, NS)
}

const (
	NS     = `http://www.w3.org/2001/XMLSchema#`
	Prefix = `xsd:`
)

const (
	String  = NS + `string`
	Boolean = NS + `boolean`
	Decimal = NS + `decimal`
	Double  = NS + `double`
	Float   = NS + `float`

	Integer            = NS + `integer`
	Long               = NS + `long`
	Int                = NS + `int`
	Short              = NS + `short`
	Byte               = NS + `byte`
	NonNegativeInteger = NS + `nonNegativeInteger`
	NonPositiveInteger = NS + `nonPositiveInteger`
	PositiveInteger    = NS + `positiveInteger`
	NegativeInteger    = NS + `negativeInteger`
	UnsignedLong       = NS + `unsignedLong`
	UnsignedInt        = NS + `unsignedInt`
	UnsignedShort      = NS + `unsignedShort`
	UnsignedByte       = NS + `unsignedByte`

	DateTime = NS + `dateTime`
	Date     = NS + `date`
	AnyURI   = NS + `anyURI`
)
