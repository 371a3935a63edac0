// Package catalog defines the per-locale message catalog: a tree rooted at a
// locale field plus a fixed set of required message groups, where every leaf
// reachable by a dot-path is a message template string.
//
// Catalogs are built from raw decoded documents with New. Construction runs
// an explicit schema-validation step (Validate) backed by a JSON Schema, so a
// malformed payload is rejected with a structured ValidationResult instead of
// failing later during lookups:
//
//	raw, err := catalog.NewYAMLParser().Parse(ctx, data)
//	if err != nil {
//		return err
//	}
//	c, err := catalog.NewForLocale(raw, "en")
//	if err != nil {
//		var invalid *catalog.InvalidCatalogError
//		if errors.As(err, &invalid) {
//			log.Printf("bad catalog at %s: %s", invalid.Result.Path, invalid.Result.Reason)
//		}
//		return err
//	}
//	tmpl, ok := c.Lookup("string.tooShort")
//
// JSON, YAML and TOML documents are supported through the Parser interface.
// A Catalog is immutable once built and safe for concurrent reads.
package catalog
