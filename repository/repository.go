// Package repository holds one narrow access object per entity. Callers
// never hand SQL in; every query is parameter-bound here. Multi-statement
// writes get transaction-scoped clones through WithTx.
package repository

import "errors"

// ErrDuplicate reports a storage-level uniqueness violation. Services
// translate it into the same conflict outcome as their pre-checks, so a
// race between check and insert is indistinguishable from a plain
// duplicate.
var ErrDuplicate = errors.New("duplicate row")
