// Package canon computes a content-addressed identity for a repaired
// JSON document: a canonical byte encoding, a domain-separated SHA-256
// hash of that encoding, and a deterministic UUID derived from the
// hash for use as a cache key.
//
// Repair itself never canonicalizes or hashes anything; that stays
// entirely within this package and its caller (internal/cache), keeping the parser free of any notion of identity or storage.
package canon
