// Command annual evaluates recurrence rules against a year, grounded
// on cmd/goholidays/main.go's flag-based CLI shape: flag.String/Int
// options selecting a mode, a table/json output switch, and a
// version flag.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"github.com/tom65536go/annual"
	"github.com/tom65536go/annual/config"
	"github.com/tom65536go/annual/rules"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to annual.yaml (defaults to the conventional search path)")
		year       = flag.Int("year", time.Now().Year(), "Year to evaluate rules for")
		rule       = flag.String("rule", "", "A single rule expression to evaluate and print as \"result\"")
		rulesFile  = flag.String("rules-file", "", "Path to a bundle file of name = \"rule\" entries to evaluate")
		format     = flag.String("format", "table", "Output format: table, json")
		version    = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *version {
		fmt.Println("annual CLI v1.0.0")
		fmt.Println("A recurrence-rule evaluation engine for movable dates")
		return
	}

	mgr := config.NewManager()
	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = mgr.LoadFromFile(*configPath)
	} else {
		cfg, err = mgr.Load()
	}
	if err != nil {
		log.Fatalf("loading configuration: %v", err)
	}

	reg, err := cfg.Registry()
	if err != nil {
		log.Fatalf("building producer registry: %v", err)
	}
	base := reg.Evaluate(*year)

	ruleSet := map[string]string{}
	for _, b := range cfg.Bundles {
		if b.Path == "" {
			continue
		}
		bundleRules, err := config.LoadLocalBundle(b.Path)
		if err != nil {
			log.Fatalf("loading bundle %s: %v", b.Path, err)
		}
		for name, r := range bundleRules {
			ruleSet[name] = r
		}
	}
	if *rulesFile != "" {
		bundleRules, err := config.LoadLocalBundle(*rulesFile)
		if err != nil {
			log.Fatalf("loading rules file %s: %v", *rulesFile, err)
		}
		for name, r := range bundleRules {
			ruleSet[name] = r
		}
	}
	if *rule != "" {
		ruleSet["result"] = *rule
	}

	if len(ruleSet) == 0 {
		printDates(base, *format)
		return
	}

	parser := rules.NewParser(*year, base)
	results := make(annual.NamedDateTable, len(ruleSet))
	for name, r := range ruleSet {
		d, err := parser.Parse(r)
		if err != nil {
			log.Fatalf("rule %q: %v", name, err)
		}
		results[name] = d
	}
	printDates(results, *format)
}

func printDates(table annual.NamedDateTable, format string) {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	switch format {
	case "json":
		out := make(map[string]string, len(names))
		for _, name := range names {
			if d, ok := table[name].Get(); ok {
				out[name] = d.String()
			} else {
				out[name] = ""
			}
		}
		if err := json.NewEncoder(os.Stdout).Encode(out); err != nil {
			log.Fatalf("encoding output: %v", err)
		}
	default:
		fmt.Printf("%-30s %-12s\n", "Name", "Date")
		for _, name := range names {
			if d, ok := table[name].Get(); ok {
				fmt.Printf("%-30s %-12s\n", name, d.String())
			} else {
				fmt.Printf("%-30s %-12s\n", name, "(none)")
			}
		}
	}
}
