// Package cache is a log of repair calls backed by SQLite, holding one
// record per distinct input (a repeated input overwrites its record).
// It exists for the batch CLI: a persistent log lets "jsonrepair cache
// verify" confirm that Repair still produces the same output it did
// the last time an input was seen, which is the closest thing to a
// regression test a deployed binary can run against its own history.
// Put repairs every input it is given, including inputs already logged.
//
// The engine in internal/repair has no notion of caching or storage;
// everything here is a consumer of that package, not a dependency of
// it.
package cache
