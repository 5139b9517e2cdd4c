// Package voc implements a registry of well-known RDF vocabularies.
//
// Vocabularies in sub-packages register their prefixes on import, so a
// blank import of voc/rdf makes "rdf:" available to ShortIRI and FullIRI.
package voc

import (
	"sort"
	"strings"
	"sync"
)

var (
	mu       sync.RWMutex
	prefixes = make(map[string]string)
)

// RegisterPrefix associates a given prefix (including the trailing colon)
// with a base vocabulary IRI.
func RegisterPrefix(pref string, ns string) {
	mu.Lock()
	prefixes[pref] = ns
	mu.Unlock()
}

// ShortIRI replaces a base IRI of a known vocabulary with its prefix.
// The longest matching vocabulary wins.
//
//	ShortIRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#type") // returns "rdf:type"
func ShortIRI(iri string) string {
	mu.RLock()
	defer mu.RUnlock()
	best, bestNS := "", ""
	for pref, ns := range prefixes {
		if strings.HasPrefix(iri, ns) && len(ns) > len(bestNS) {
			best, bestNS = pref, ns
		}
	}
	if bestNS == "" {
		return iri
	}
	return best + iri[len(bestNS):]
}

// FullIRI replaces a known prefix in an IRI with its full vocabulary IRI.
//
//	FullIRI("rdf:type") // returns "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
func FullIRI(iri string) string {
	mu.RLock()
	defer mu.RUnlock()
	for pref, ns := range prefixes {
		if strings.HasPrefix(iri, pref) {
			return ns + iri[len(pref):]
		}
	}
	return iri
}

// Lookup returns the vocabulary IRI registered for a prefix.
func Lookup(pref string) (string, bool) {
	mu.RLock()
	ns, ok := prefixes[pref]
	mu.RUnlock()
	return ns, ok
}

// List enumerates all registered prefix-IRI pairs, sorted by prefix.
func List() (out [][2]string) {
	mu.RLock()
	defer mu.RUnlock()
	out = make([][2]string, 0, len(prefixes))
	for pref, ns := range prefixes {
		out = append(out, [2]string{pref, ns})
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return
}
