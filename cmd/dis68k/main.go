package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dis68k/dis68k/hunk"
	"github.com/dis68k/dis68k/internal/config"
	"github.com/dis68k/dis68k/listing"
	"github.com/dis68k/dis68k/m68k"
)

func main() {
	opts := listing.DefaultOptions()

	var (
		outputFile = flag.String("o", "", "output file (default: stdout)")
		cpu        = flag.String("cpu", "68000", "target CPU variant (68000, 68010, 68020, 68030, 68040, 68060)")
		profile    = flag.String("config", "", "optional YAML defaults profile")
		uppercase  = flag.Bool("uppercase", false, "render mnemonics in upper case")
		noAddr     = flag.Bool("no-addresses", false, "omit the address column")
		noHex      = flag.Bool("no-hex", false, "omit the hex byte-dump column")
		noLines    = flag.Bool("no-line-numbers", false, "omit line numbers")
		hunkInfo   = flag.Bool("hunk-info", false, "print a per-hunk summary instead of a full listing")
		verbose    = flag.Bool("v", false, "log progress to stderr")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <inputfile>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	if *profile != "" {
		p, err := config.Load(*profile)
		if err != nil {
			log.Fatalf("dis68k: %v", err)
		}
		opts, err = p.ApplyTo(opts)
		if err != nil {
			log.Fatalf("dis68k: %v", err)
		}
	}
	cpuSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "cpu" {
			cpuSet = true
		}
	})
	if variant, ok := m68k.ParseCpuVariant(*cpu); !ok {
		log.Fatalf("dis68k: unknown -cpu %q", *cpu)
	} else if cpuSet || *profile == "" {
		opts.Cpu = variant
	}
	opts.Uppercase = opts.Uppercase || *uppercase
	if *noAddr {
		opts.ShowAddresses = false
	}
	if *noHex {
		opts.ShowHex = false
	}
	if *noLines {
		opts.ShowLineNumbers = false
	}

	inputPath := flag.Arg(0)
	if *verbose {
		log.Printf("dis68k: reading %s", inputPath)
	}
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		log.Fatalf("dis68k: reading input file: %v", err)
	}

	file, err := hunk.Parse(raw)
	if err != nil {
		log.Fatalf("dis68k: parsing hunk file: %v", err)
	}
	if *verbose {
		log.Printf("dis68k: parsed %d hunks", len(file.Hunks))
	}

	var text string
	if *hunkInfo {
		for _, info := range listing.GenerateHunkInfo(file) {
			text += info.String() + "\n"
		}
	} else {
		for _, line := range listing.Generate(file, opts) {
			text += line.Text + "\n"
		}
	}

	if *outputFile == "" {
		fmt.Print(text)
		return
	}
	if err := os.WriteFile(*outputFile, []byte(text), 0644); err != nil {
		log.Fatalf("dis68k: writing output file: %v", err)
	}
	if *verbose {
		log.Printf("dis68k: wrote listing to %s", *outputFile)
	}
}
