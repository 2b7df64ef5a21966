package main

import (
	"encoding/json"
	"fmt"
	"os"

	"player-enricher/core/reconcile"
	"player-enricher/core/sheet"
	"player-enricher/feature/players/rankings"
)

// Decodes a local ranking export, locates its name column and adapts it with
// a format's column mapping, printing what the pipeline would see.
//
//	debug_sheet <format> <file>
func main() {
	if len(os.Args) != 3 {
		fmt.Printf("usage: %s <format> <file>\nformats: %v\n", os.Args[0], rankings.Names())
		os.Exit(2)
	}

	profile, ok := rankings.ProfileByName(os.Args[1])
	if !ok {
		fmt.Printf("unknown format %q, expected one of %v\n", os.Args[1], rankings.Names())
		os.Exit(1)
	}

	f, err := os.Open(os.Args[2])
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer f.Close()

	wb, err := sheet.Decode(os.Args[2], f)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	for i, s := range wb.Sheets {
		fmt.Printf("sheet %d %q: %d rows\n", i, s.Name, len(s.Rows))
	}

	rel, report := reconcile.Adapt(wb, profile.Spec)
	out, _ := json.MarshalIndent(report, "", "  ")
	fmt.Println(string(out))
	if report.Err != nil {
		fmt.Println("adapt:", report.Err)
		return
	}

	limit := min(rel.Len(), 10)
	for _, rec := range rel.Records[:limit] {
		line, _ := json.Marshal(rec.Compact())
		fmt.Println(string(line))
	}
	if rel.Len() > limit {
		fmt.Printf("... %d more\n", rel.Len()-limit)
	}
}
