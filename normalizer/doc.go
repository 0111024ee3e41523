// Package normalizer turns the raw text an extraction agent returns into a
// clean, timestamped result document.
//
// The agent is asked to answer with a single JSON object but routinely wraps
// it in commentary, re-observes people while scrolling, and returns profile
// URLs with tracking parameters. The normalizer extracts the JSON object from
// the surrounding text, canonicalizes every profile URL, drops duplicate and
// keyless entries (first occurrence wins, order preserved), stamps the
// extraction time itself, and recomputes the extracted count from the cleaned
// list.
//
// The two terminal failure modes, no JSON object in the text and a JSON
// object that does not parse, are reported as errors so the caller can emit
// an error-shaped document instead; they are never worth a retry.
//
// A Normalizer is a pure transformation: it performs no I/O, keeps no state
// between calls, and its only ambient input is the clock, which is
// injectable for tests.
package normalizer
