// Package document abstracts the host that stores the transcript text. The
// conversation core is written against the Document interface only, so any
// editor or storage backend can participate by satisfying it.
//
// Two hosts ship with the module: Memory, an in-process line buffer used by
// tests and embedders, and File, which maps a transcript onto a file on disk
// for the CLI host.
package document
