// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gg

import (
	"fmt"
	"log"
	"os"
)

// Warning is a logger for reporting conditions that don't prevent the
// production of a plot, but may lead to unexpected results.
var Warning = log.New(os.Stderr, "[gg] ", log.Lshortfile)

// A SpecificationError reports a plot specification the build
// pipeline cannot proceed from: a plot with no layers, a required
// aesthetic no mapping provides, or an invalid legend position.
type SpecificationError struct {
	Msg string
}

func (e *SpecificationError) Error() string {
	return "gg: " + e.Msg
}

func specErrorf(format string, args ...interface{}) error {
	return &SpecificationError{Msg: fmt.Sprintf(format, args...)}
}
