package format

// Corpus exposes the round-trip corpus to the external test package.
var Corpus = corpus
