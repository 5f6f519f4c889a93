// Package pipeline implements the biography content pipeline.
//
// The stages are pure functions over already-loaded strings:
//   - Token normalization (locale-tolerant slugs for headings and filenames)
//   - Section segmentation of flat or pre-structured paragraph streams
//   - Grouping of image filenames into one- or two-image series
//   - Matching of section titles to series through an alias table
//   - Tokenizing of paragraph text into plain and styled spans
//
// Directory listing lives in the gallery package. Every function here is
// pure and safe for concurrent use.
package pipeline
