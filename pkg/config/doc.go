/*
Package config holds the classification table for presetsort.

	            +-------------+
	            |   Config    |
	            |   (Table)   |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+-----+ +----+----+ +-----+-----+
	|   YAML    | |   HCL   | |   JSON    |
	|  Parser   | | Parser  | |  Parser   |
	+-----------+ +---------+ +-----------+

🎯 Purpose:
- Describes categories, their keywords and which keywords are strict
- Lists genre phrases stripped from names before matching
- Lists the ordered fallback rules (hash-like, localized, customized names)
- Names the catch-all bucket and the supported file extensions

🔄 Flow:
1. Default() returns the built-in table, or Load() reads one from disk
2. The parser is chosen by file suffix through the registry
3. Validate() normalizes casing and rejects unusable tables
4. classify.New compiles the table into an immutable classifier

📝 Design Philosophy:
The table is data, not code. Adding a keyword never touches the matching
algorithm, and tests can build throwaway tables without global state.

🔍 Example:

	cfg, err := config.Load(ctx, "presetsort.yaml")
	if err != nil {
		return err
	}
	c, err := classify.New(cfg)
*/
package config
