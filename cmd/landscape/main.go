// Command landscape is a small front end over the landscape graph: it
// creates, lists, edits and deletes typed nodes and relationships, seeds the
// baseline dataset and reports aggregate counts.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
