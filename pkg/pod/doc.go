// Package pod defines the format-agnostic value model shared by all front
// matter engines. A [Pod] is a closed tagged union over null, string,
// integer, float, boolean, sequence, and hash variants; an engine parses raw
// front matter into a Pod so callers can inspect it uniformly, whatever
// format the document used.
//
// # Basic Usage
//
//	data := result.Data // from matter.Parse
//	title, err := data.Get("title").AsString()
//	if err != nil {
//		log.Fatal(err)
//	}
//	first, err := data.Get("tags").Index(0)
//
// Typed accessors never guess: asking a string pod for an integer fails with
// an error naming both kinds. The single documented coercion is [Pod.AsFloat]
// promoting an integer. Hash lookups for missing keys return the null pod;
// use [Pod.Lookup] when absence must be distinguished from a stored null.
//
// # Decoding Into Structs
//
// [Pod.Decode] converts a hash pod into an arbitrary struct:
//
//	type FrontMatter struct {
//		Title string   `matter:"title"`
//		Tags  []string `matter:"tags"`
//	}
//
//	var fm FrontMatter
//	if err := result.Data.Decode(&fm); err != nil {
//		log.Fatal(err)
//	}
//
// [Pod.DecodeStrict] additionally rejects pods that leave target fields
// unset, for callers that treat every field as required.
package pod
