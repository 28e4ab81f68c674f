// Package answer compares execution results against gold answers.
//
// Matching follows the WikiTableQuestions evaluator: both sides are turned
// into answer values (a number, a date, or normalized text), duplicates
// collapse, and a prediction is correct when it has exactly as many
// distinct values as the targets and every target is matched by one of
// them. Numbers match within 1e-6; dates match component-wise; everything
// else matches on normalized text.
package answer
