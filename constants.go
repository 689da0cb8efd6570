package slice1

// SpecVersion is the SLICE specification version this package
// implements.  Conformance vector files carry the same version in their
// meta block.
const SpecVersion = "1.0"
