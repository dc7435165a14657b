package io

import (
	"errors"

	"github.com/ezrec/stackvm/translate"
)

var f = translate.From

var (
	// Sink errors
	ErrSinkFull    = errors.New(f("sink full"))
	ErrTapeMissing = errors.New(f("tape output missing"))
)
