// Copyright 2022 The go-recurrence Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command recur-run computes terms of a scalar recurrence
// N_{k+1} = f(N_k) given as a fully parenthesized formula over n.
//
// Usage:
//
//	recur-run [-v] [-no-jit] [expression [iterations [initial-term]]]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/go-recurrence/recur/exec"
	"github.com/go-recurrence/recur/expr"
)

const defaultExpr = "(((54 + 3) / 8) - (4 * 2)) + n"

func main() {
	log.SetPrefix("recur-run: ")
	log.SetFlags(0)

	verbose := flag.Bool("v", false, "enable/disable verbose mode")
	noJIT := flag.Bool("no-jit", false, "interpret instead of compiling for the host")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: recur-run [options] [expression [iterations [initial-term]]]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	expr.SetDebugMode(*verbose)

	formula := defaultExpr
	iters := uint64(100000)
	n0 := 0.0

	if flag.NArg() > 0 {
		formula = flag.Arg(0)
	}
	if flag.NArg() > 1 {
		v, err := strconv.ParseUint(flag.Arg(1), 10, 64)
		if err != nil {
			log.Fatalf("bad iteration count %q: %v", flag.Arg(1), err)
		}
		iters = v
	}
	if flag.NArg() > 2 {
		v, err := strconv.ParseFloat(flag.Arg(2), 64)
		if err != nil {
			log.Fatalf("bad initial term %q: %v", flag.Arg(2), err)
		}
		n0 = v
	}

	r, err := exec.New(formula, n0)
	if err != nil {
		log.Fatalf("could not build recurrence: %v", err)
	}
	defer r.Close()

	if *verbose {
		log.Printf("tokens:  %v", r.Tokens())
		log.Printf("postfix: %v", r.Postfix())
	}

	out, err := r.Compute(iters, !*noJIT)
	if err != nil {
		log.Fatalf("could not compute: %v", err)
	}
	fmt.Println(out)
}
