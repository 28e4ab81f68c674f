// Package dataset loads example suites: questions paired with a table file,
// gold target answers, and candidate logical forms to score.
//
// Three formats are accepted, chosen by file extension:
//
//	.yaml, .yml   a mapping with "name" and "examples" (unknown fields rejected)
//	.jsonl        one example object per line
//	.cue          a CUE value checked against the embedded schema.cue
//
// Table paths are resolved relative to the suite file.
package dataset
