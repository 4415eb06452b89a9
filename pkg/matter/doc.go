// Package matter extracts front matter, the delimited metadata block at the
// start of a document, from the surrounding body content.
//
// A [Matter] couples delimiter configuration with a format engine (YAML,
// TOML, JSON, or anything implementing [engine.Engine]) and splits raw input
// into front matter, optional excerpt, and content:
//
//	m := matter.New(engine.YAML)
//	result, err := m.Parse(input)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Content)
//	title, _ := result.Data.Get("title").AsString()
//
// Inputs without a front matter block are never an error: Parse returns the
// whole input as Content and the null pod as Data. This also covers an
// opening "---" with no closing line, which is treated as plain content
// because "---" doubles as a Markdown horizontal rule.
//
// [Matter.ParseInto] decodes the front matter straight into a struct, and
// [Matter.Compose] performs the inverse transform, re-serializing a pod and
// wrapping it in delimiters ahead of the body.
//
// A configured Matter is read-only during parsing and safe to share across
// goroutines.
package matter
