// Package catalog parses comma-delimited translation catalogs and answers
// value-based translation queries. A catalog has one column per language
// and one row per translatable text; lookups scan the source language
// column for a matching value and return the same row in the target
// language.
package catalog
