package espalier

// Version is the library version reported by the CLI and HTTP surface.
var Version = "0.1.0"
