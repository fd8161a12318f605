// Package predict holds the price and rent prediction forms. The two are
// instances of one parameterized workflow differing only in endpoint and
// result field. Submission is single-flight and validates the numeric
// fields before any network call.
package predict
