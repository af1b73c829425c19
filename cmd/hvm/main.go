// Command hvm drives the interaction-net runtime over the in-repo sample
// program, the way cauefcr-HVM's main reads a hardcoded benchmark size,
// runs it to normal form, and prints rewrite/memory/timing statistics.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/o1lo01ol1o/HVM/internal/hvm"
)

func main() {
	workers := flag.Uint64("workers", 4, "number of parallel workers")
	bandSize := flag.Uint64("band", 1<<24, "cells reserved per worker band")
	depth := flag.Uint64("depth", 20, "Gen tree depth for the sample Sum(Gen(depth)) workload")
	flag.Parse()

	if *workers == 0 {
		fmt.Fprintln(os.Stderr, "hvm: -workers must be at least 1")
		os.Exit(1)
	}

	prog := hvm.NewSampleProgram()
	pool := hvm.NewPool(*workers, *bandSize, prog)
	main0 := pool.MainWorker()

	host := hvm.BuildSumOfGen(main0, *depth)

	start := time.Now()
	result := pool.Normal(host)
	elapsed := time.Since(start)

	reader := hvm.NewReader(main0)
	fmt.Printf("result:   %s\n", reader.Show(result))
	fmt.Printf("rewrites: %d\n", pool.TotalCost())
	fmt.Printf("memory:   %d words\n", pool.Heap().Size())
	fmt.Printf("time:     %s\n", elapsed)
}
