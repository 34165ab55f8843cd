package typeinspect

// Version of the module, reported by the typeinspect command.
const Version = "0.1.0"
