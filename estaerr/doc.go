// Package estaerr centralizes the fatal, sentinel-based error kinds
// raised by the esta core (graph, delay, tag, propagate, satbdd).
//
//	go get github.com/opentimely/esta/estaerr
package estaerr
