package main

import (
	"fmt"
	"os"

	"github.com/forla-research/stripgif"
)

func main() {
	if err := newApp(stripgif.Run, os.LookupEnv).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
