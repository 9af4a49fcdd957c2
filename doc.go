// Package seq defines the traversal contract shared by the sequence containers in
// github.com/motoki317/seq/linkedlist and github.com/motoki317/seq/arraylist.
//
// Containers in this module are not goroutine-safe. Mutating a container while one of its
// iterators is in use is allowed but the values yielded afterwards are unspecified.
package seq
