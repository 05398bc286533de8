// Package collate is the module root of a text collation engine: it aligns
// textual witnesses (variant copies of one text) into a single variant graph
// recording where they agree and where they diverge.
//
// Packages:
//
//	token          tokens, witnesses, comparators
//	variantgraph   the shared graph: ranking, merging, alignment table
//	tokenindex     suffix array, LCP array and LCP intervals over all witnesses
//	matchcube      token-to-vertex match candidates of one incoming witness
//	editgraph      dynamic-programming alignment with backtrace
//	decisiongraph  A* alignment over (graph, witness) position pairs
//	collate        run sequencing, strategy selection, observability
//	config         YAML and environment configuration
//	cmd/collate    command line tool
//
// Flow of one run:
//
//	witnesses → token index → for each further witness:
//	    rank graph → match cube → aligner → merge
package collate
