// Package robdd implements a minimal reduced, ordered binary decision
// diagram manager: hash-consed unique table, complemented edges, a
// memoized ITE operator, restriction, support enumeration and exact
// fractional minterm counting.
//
// This is the from-scratch stand-in for the "underlying BDD package"
// spec.md treats as an external black box — see manager.go's package
// comment and DESIGN.md for why no ecosystem library fills that role.
//
//	go get github.com/opentimely/esta/satbdd/robdd
package robdd
