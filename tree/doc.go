/*
Package tree provides a small ready-made node hierarchy for callers that do
not bring their own: payload-carrying nodes with parent back-links, plus a
matcher adapter over them. The treematch engine itself is hierarchy-agnostic;
this package mainly serves tests, examples and quick experiments.
*/
package tree
