// Package registry resolves locale codes to loaders, fetches and validates
// catalog documents, and caches the resulting catalogs for the lifetime of
// the Registry.
//
// Loaders abstract catalog acquisition. The package ships loaders for
// in-memory maps, any fs.FS (embedded files or a directory), S3 buckets and
// Redis keys:
//
//	dir, _ := registry.NewFSLoader(os.DirFS("./locales"), "%s.yaml")
//	reg := registry.New(
//		registry.WithLoaders(registry.Same(dir, "en", "es", "fr")),
//	)
//	if err := reg.LoadLocales(ctx, "en", "es"); err != nil {
//		// some locales failed; the others are registered
//	}
//
// # Error Handling
//
// LoadLocale reports *UnsupportedLocaleError when no loader exists for a code,
// *catalog.InvalidCatalogError when the payload breaks the shape contract and
// *LoadError for any other fetch failure. Each matches a sentinel through
// errors.Is (ErrUnsupportedLocale, catalog.ErrInvalidCatalog, ErrLoadFailed).
//
// Loads have no built-in timeout; bound them with the context you pass in.
package registry
