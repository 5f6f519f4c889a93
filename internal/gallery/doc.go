// Package gallery lists biography image files and groups them into series.
//
// Listing is the only I/O performed while building a page. It is abstracted
// behind Lister so callers can read a directory on disk (DirLister), an
// fs.FS such as an embedded tree (FSLister), or a cached view of either
// (Cache.Wrap). Discover turns a listing into a pipeline.SeriesMap.
package gallery
