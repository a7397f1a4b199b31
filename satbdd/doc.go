// SPDX-License-Identifier: MIT

// Package satbdd implements the #SAT / BDD engine (component C5): it
// allocates BDD variables per primary input (§4.5.1), builds and
// memoizes a tag's Boolean witness ("xfunc", §4.5.2), and reports the
// probability mass behind any tag via exact minterm-fraction counting
// (§4.5.3). The actual ROBDD data structure and its ITE/restrict/count
// primitives live in the satbdd/robdd subpackage, which this package
// treats as the "external black-box BDD package". Each Manager owns one
// robdd.Manager for the whole analysis run; it is not a package-level
// singleton, and per-node switching functions are built in separate
// private managers (NodeFuncBuilder).
package satbdd
