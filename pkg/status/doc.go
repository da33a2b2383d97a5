/*
Package status owns every write into the destination tree.

	            +-------------+
	            |   Manager   |
	            |  (Storage)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+-----+ +----+----+ +-----+-----+
	|   Hash    | |Allocator| |   Stats   |
	| (SHA-256) | |(no-clob)| | (Outcome) |
	+-----------+ +---------+ +-----------+

🎯 Purpose:
- Hashes preset content so identity never depends on names
- Picks collision-free names (stem_1.ext, stem_2.ext ...) and publishes content
  without ever replacing an existing file
- Records what happened to each (file, category) pair as an Outcome
- Accumulates run statistics, per source root and in total

🔄 Flow:
1. Manager.Place computes root/category/filename
2. The Allocator locks the category directory and walks the candidates
3. A candidate holding identical content ends the walk as present
4. The first free candidate receives a staged temp file through a hard link
   (or an exclusive-create reservation when links are unavailable)

⚡ Key Responsibilities:
- Atomic publication: readers never see a half-written preset
- Per-directory serialization of check-then-create
- Moves that leave the source in place until the copy is durable

📝 Design Philosophy:
Placement is idempotent. Rerunning over a half-finished destination finds the
content already present and writes nothing, so an interrupted run needs no
cleanup step.

🔍 Example:

	mgr := status.New(dest)
	digest, err := status.Hash(src)
	if err != nil {
		return err
	}
	p := mgr.Place(ctx, src, digest, "Bass", status.MethodCopy)
	fmt.Println(status.NewDefaultFileFormatter().FormatPlacement(filepath.Base(src), p))
*/
package status
