// Command docs-version computes version labels and links for the Jelly-JVM
// documentation build.
package main

import "github.com/jelly-rdf/docs-version/cmd/docs-version/cmd"

func main() {
	cmd.Execute()
}
