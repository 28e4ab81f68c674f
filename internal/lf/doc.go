// Package lf parses logical forms.
//
// A logical form is a fully parenthesized S-expression:
//
//	expr := atom | "(" expr+ ")"
//
// Atoms are any run of characters other than whitespace and parentheses:
// function names, column identifiers such as number_column:year, string
// literals such as string:usl_a_league, numbers, and all_rows. The parser
// assigns no meaning to atoms; the executor resolves them.
package lf
