// Copyright 2026 The Hermes Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package ast

import timecache "github.com/agilira/go-timecache"

// TimeProvider supplies the current time as nanoseconds since the Unix
// epoch. A Heap uses it only to time collections for CollectionDuration;
// tests supply a fixed or incrementing TimeProvider to get deterministic
// durations.
type TimeProvider interface {
	Now() int64
}

// systemTimeProvider is the default TimeProvider, backed by a cached
// clock read so that timing a collection doesn't pay a syscall on every
// call.
type systemTimeProvider struct{}

func (systemTimeProvider) Now() int64 {
	return timecache.CachedTimeNano()
}
