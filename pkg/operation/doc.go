/*
Package operation implements the reconciliation of source trees into a categorized destination.

	            +-------------+
	            |  Organizer  |
	            | (Reconcile) |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+-----+ +----+----+ +-----+-----+
	| Discover  | |Classify | |  Status   |
	|  (walk)   | | (names) | |  (place)  |
	+-----------+ +---------+ +-----------+

🎯 Purpose:
- Walks every source root and keeps the supported presets
- Hashes them on a bounded worker pool
- Files each one under every category its name earns
- Guarantees one copy per content across the whole destination

🔄 Flow:
1. Resolve the request: absolute roots, destination, copy or move
2. Discover files (sorted, ignore globs applied, destination pruned)
3. Hash a batch, then walk it sequentially:
   - known digest: duplicate, nothing touched
   - move mode and no category: left in place
   - otherwise place per category through status.Manager
4. Report each file to the Observer, record it in status.Stats

⚡ Key Responsibilities:
- Content identity through the Registry, shared by every root in a run
- Only one move per file; further categories copy from the moved file
- Cleanup of sources whose content is already filed, in move mode
- Cancellation between files, with partial statistics returned

🔍 Example:

	org, err := operation.New(operation.Options{Classifier: c})
	if err != nil {
		return err
	}
	stats, err := org.Organize(ctx, operation.Request{
		Sources:     []string{"~/Downloads/Presets"},
		Destination: "~/Music/Presets",
	})

💡 Re-verification:
Running with the catch-all folder of the destination as the only source moves
files that now match a category out of it, and leaves the rest where they are.
*/
package operation
