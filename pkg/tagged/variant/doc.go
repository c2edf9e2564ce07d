// Package variant exposes the tagged tuple helpers under the Variant name.
//
// Every identifier forwards to package tagged, so values, cases and errors
// are interchangeable between the two packages.
package variant
