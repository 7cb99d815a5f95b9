// The main package for the newsaggregator executable.
package main

import "github.com/YuchiLiuS/newsaggregator/cmd"

// main is the entry point of the application. It defers all execution to
// the Cobra CLI library.
func main() {
	cmd.Execute()
}
