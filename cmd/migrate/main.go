// Command migrate applies, rolls back and reports the embedded schema
// migrations against the configured database.
package main

func main() {
	Execute()
}
