// Package rangeref keeps named ranges and mark ranges of a grid document
// consistent with the grid they point into.
package rangeref

import "log"

// Options configures a Document.
type Options struct {
	// ShiftReferences enables moving unanchored range corners when rows or
	// columns are inserted or deleted. When false, ApplyEdit only rebinds
	// corners to the restructured grid.
	ShiftReferences bool
	// AutoDeselect clears the selection of every other mark range when a
	// new one is created. If nil, defaults to true.
	AutoDeselect *bool
	// ErrorSink receives every validation failure. If nil, failures are
	// logged.
	ErrorSink func(error)
}

// DefaultOptions returns default document options.
func DefaultOptions() Options {
	return Options{}
}

// ShouldAutoDeselect returns whether creating a mark range deselects the others.
func (o Options) ShouldAutoDeselect() bool {
	if o.AutoDeselect != nil {
		return *o.AutoDeselect
	}
	return true
}

func (o Options) sink() func(error) {
	if o.ErrorSink != nil {
		return o.ErrorSink
	}
	return func(err error) {
		log.Printf("Ranges: %v", err)
	}
}
