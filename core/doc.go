// Package core defines the shared types used across kvlog.
//
// It provides the Level type, the Field type that holds a single
// key/value(s) record, the persistent Fields chain the builder grows,
// and Render, which turns a chain into a printf-style format string
// and its positional arguments.
//
// Fields are immutable once constructed. A Fields chain is a singly
// linked list whose Append returns a new head that shares the tail,
// so two chains branched from the same base never observe each
// other's fields and no locking is required.
//
// Rendering normalizes instead of rejecting: keys are reduced to
// [A-Za-z0-9_.], fields whose key ends up empty are dropped, nil
// values render as "null", slices and arrays render as "[a, b, c]",
// and every rendered value has quotes removed, newlines replaced by
// spaces and surrounding whitespace trimmed.
//
// Entry is the sink-side record used by the console sink and the
// formatters. Entry objects are pooled via sync.Pool; callers get one
// with GetEntry and return it with PutEntry once it has been written.
package core
