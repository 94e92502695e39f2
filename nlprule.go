// Package nlprule is a rule-based grammar, spelling and style checker.
//
// The two entry points are Tokenizer and Rules. Both deserialize a binary
// artifact, either from a local file or from the versioned artifact store
// (downloaded once and cached on disk). A Rules value is bound to the
// Tokenizer it was constructed with and shares it by reference.
//
// Every text-level operation comes in two shapes: a scalar form taking one
// string and a batch form taking a slice, returning results parallel to the
// input. Full-text operations (Tokenize, Suggest, Correct) additionally need
// a SentenceSplitter; the *Sentence forms work on a single pre-split
// sentence and need none.
package nlprule

// Version is the facade build version. It parameterizes both the artifact
// download URL and the on-disk cache path, so bumping it invalidates all
// cached artifacts by construction.
const Version = "0.6.4"
