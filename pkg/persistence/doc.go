// Package persistence stores data-model records in files.
//
// A Store owns one file and one wire format. Saves write a temporary file in
// the same directory and rename it over the target, so readers never see a
// partially written document. The data model of a loaded document is taken
// from its root element.
package persistence
