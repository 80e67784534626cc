// Command ferias runs one vacation calculation from flags and prints the
// breakdown as a table.
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
