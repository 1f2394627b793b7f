// Package caseio reads and writes the plain-text case files the solver
// works on, and renders ticket sets as Graphviz graphs.
//
// Input format:
//
//	<case count>
//	<ticket count>
//	<NAME> <NAME>      (ticket count lines)
//	...
//
// Output format, per case:
//
//	Case #<i>: <purchases>
//	<FROM> <TO>        (one line per purchased transport)
//
// Blank lines in the input are ignored.
package caseio
