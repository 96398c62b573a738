// Command leaseqctl is a CLI client for driving and inspecting a
// leaseq broker backed by a SQLite file, useful for local development
// and manual operations.
package main
