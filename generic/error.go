// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package generic

import "reflect"

// TypeError is the error of applying a generic operation to a value
// whose type does not support it. Type2 is the type of a second
// operand, if the operation is binary.
type TypeError struct {
	Type  reflect.Type
	Type2 reflect.Type
	Extra string
}

func (e TypeError) Error() string {
	msg := "type " + e.Type.String()
	if e.Type2 != nil {
		msg += " and " + e.Type2.String()
	}
	if e.Extra != "" {
		msg += " " + e.Extra
	}
	return msg
}
