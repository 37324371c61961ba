// Package splice copies a cursor range into a destination sequence through
// a pluggable insertion strategy.
//
// The copy loop is written exactly once (Copy); what varies is the Inserter
// strategy selected at the call site:
//
//	splice.Append[T](dst)      — each element is appended to dst's logical
//	                             end, so the final layout is dst ++ src.
//	                             O(k) amortized for k copied elements when
//	                             dst appends in amortized O(1).
//	splice.Before[T](dst, at)  — each element is inserted immediately
//	                             before the element at denotes, so elements
//	                             originally at or after it end up after all
//	                             inserted ones. at == dst.Begin() prepends,
//	                             at == dst.End() appends. O(k + m) where m
//	                             is the destination suffix shifted per
//	                             container contract.
//
// Destinations declare what they can do through two small contracts:
// AppendTarget (amortized O(1) append) and InsertTarget (insert-before an
// arbitrary cursor). The seq containers implement whichever their structure
// honors; Before's cursor must belong to the destination instance, which
// containers verify (cursor.ErrInvalidPosition otherwise).
//
// Copying a sequence into itself is defined only for the append strategy,
// only on destinations whose growth does not relocate the source positions
// (seq.List, seq.Chain), and only when the source range's last bound denotes
// a fixed element — bounding by the moving end sentinel makes the copy chase
// its own appends. Appending a seq.Slice into itself may relocate the
// backing array mid-copy. Both are precondition violations, not handled
// cases.
package splice
