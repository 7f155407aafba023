// Package prefstext implements the text codec of preferences files: line
// classification, group headers, entry escaping and the generated banner.
//
// The format is private to prefkit. What it guarantees:
//
//   - decode(encode(x)) == x for every byte string used as a name or value,
//     so binary payloads survive unchanged.
//   - Comment and blank lines written by hand are handed to the caller
//     together with the line that follows them, so they can be written back
//     next to the same entry or group.
//
// Example:
//
//	; prefkit preferences file format 1.0
//	; vendor: acme.test
//	; application: demo
//	[.]
//	version:3
//
//	# main window
//	[window]
//	width:800
//	title:My App\n(beta)
package prefstext
