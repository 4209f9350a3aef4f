// Package prompt implements the line-oriented question loop used by the
// setup wizard. Each question consumes one trimmed line of input, applies an
// optional default and validation pattern, and re-asks until it gets an
// acceptable answer or the input ends.
package prompt
