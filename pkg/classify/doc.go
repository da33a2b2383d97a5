/*
Package classify turns a preset filename into the set of categories it belongs to.

	filename ──► Normalizer ──► (stem, normalized)
	                               │
	                 ┌─────────────┴─────────────┐
	                 ▼                           ▼
	        keyword categories           special chain
	        (plain / strict)       (hash → vocabulary → pattern)
	                 │                           │
	                 └──────────► Resolve ◄──────┘
	                                 │
	                                 ▼
	                       categories or catch-all

🎯 Purpose:
- Strips genre noise that would trigger false keyword hits ("future bass" is not a bass)
- Matches plain keywords as substrings and strict keywords as whole tokens
- Falls back to the special chain, then to the catch-all, only in Resolve

📝 Design Philosophy:
A Classifier is compiled once from a config.Config and never changes. Every
method is pure and safe for concurrent use, so the same instance can serve a
worker pool and a CLI at the same time.
*/
package classify
