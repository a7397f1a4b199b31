// Package boolfunc defines the Func contract used for per-node switching
// functions and provides trivial constant/identity implementations.
//
//	go get github.com/opentimely/esta/boolfunc
package boolfunc
