// Package container provides Container, a generic doubly linked sequence that
// owns a private copy of every record it holds.
//
// A Container is configured once at construction time with optional hooks:
//   - Comparator: total order over two records, required by InsertSorted,
//     Search, DeleteByValue, IndexOf, Sort and IsSorted
//   - Printer: human-readable rendering of a record, used by Render
//   - Releaser: cleanup invoked once for every record leaving the container
//   - Copier: deep copy for records with reference fields (slices, maps, pointers)
//
// Read accessors (Node.Record, At, Iterator.Next, Iterator.Current, All, Backward)
// expose a mutable reference to the container's own copy. Updating a record in
// place through such a reference is supported and visible to the container.
// A *Node handle is only valid until the next structural mutation.
//
// Common usage pattern:
//
//	books := container.New(
//		container.WithComparator(core.CompareBookISBN),
//		container.WithPrinter(core.FormatBook),
//	)
//
//	if err := books.InsertSorted(book); err != nil {
//		// handle error
//	}
//
//	for b := range books.All() {
//		fmt.Println(b.Title)
//	}
//
// A Container is not safe for concurrent use.
package container
