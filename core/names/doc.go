// Package names canonicalizes free-text player names into a matching key.
//
// The key is what sources without a shared identifier join on, so every
// caller (the registry side and every ranking source) must go through the
// same function:
//
//	names.Normalize("Patrick Mahomes II") // "patrick mahomes"
//	names.Normalize("D'Andre Swift")      // "dandre swift"
//	names.Normalize(nil)                  // ""
//
// Only the fixed punctuation set (period, apostrophe, double quote, comma)
// is stripped. Hyphens and other symbols are kept.
package names
