// Package suffixindex builds an in-memory suffix array over a single
// UTF-16LE text buffer holding many zero-separated items, and answers
// count/unique-item/multi-keyword queries against it.
//
// The index is immutable once built: construction is not safe for
// concurrent use, but the read-only query methods are.
package suffixindex
