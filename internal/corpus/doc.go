// Package corpus pins Repair's behavior on a fixed set of inputs
// against golden fixtures, and checks properties that should hold for
// any input: repairing twice is a no-op, and the result always parses
// as strict JSON.
package corpus
