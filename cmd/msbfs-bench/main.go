// Command msbfs-bench runs multi-source BFS over generated graphs and
// reports throughput.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
