package main

import (
	"bufio"
	"fmt"
	"os"

	"player-enricher/core/names"
)

// Prints the match key for each argument, or for each stdin line when no
// arguments are given.
func main() {
	if len(os.Args) > 1 {
		for _, raw := range os.Args[1:] {
			show(raw)
		}
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		show(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func show(raw string) {
	fmt.Printf("%q -> %q\n", raw, names.NormalizeString(raw))
}
