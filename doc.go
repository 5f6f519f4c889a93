// Package biopage builds render-ready models of a bilingual biography page.
//
// # Quick Start
//
// Create a service, render a locale, and hand the page to any renderer:
//
//	svc := biopage.New(
//	    biopage.WithLister(biopage.NewDirLister("public/images")),
//	)
//
//	page, err := svc.Render(ctx, biopage.Input{
//	    Locale:  "ua",
//	    Content: biopage.FlatContent(paragraphs),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Pipeline
//
// Render runs these stages:
//
//  1. Locale resolution (unknown locales fall back to the catalog default)
//  2. Image discovery: list the image directory and pair "<name>-1/-2" files
//  3. Segmentation: split the paragraph stream on the locale's headings
//  4. Matching: attach each section's image series through the alias table
//  5. Tokenization: split paragraphs into plain and styled spans
//  6. Legend: section anchors and localized labels
//
// Only stage 2 performs I/O. All other stages are pure.
//
// # Content
//
// Content is either a flat paragraph stream, in which headings are ordinary
// paragraphs recognized by exact text, or a structured document with
// authored headings. LoadContent reads either shape from a YAML or JSON
// messages file at a dotted key such as "aboutPage.biography".
//
// # Catalog
//
// Headings, aliases, special tokens and labels come from a YAML catalog.
// The built-in catalog covers English and Ukrainian; use WithCatalog and
// LoadCatalog to supply another one.
//
// # Parallel Rendering
//
// RenderAll renders several locales concurrently with a bounded number of
// workers (see ResolvePoolSize). A Service is safe for concurrent use.
package biopage
