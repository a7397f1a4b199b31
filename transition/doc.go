// Package transition holds the shared transition-type alphabet.
//
//	go get github.com/opentimely/esta/transition
package transition
