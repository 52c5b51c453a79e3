package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/tallycalc/tally"
)

func main() {
	log.SetFlags(0)
	var (
		inname  string
		quiet   bool
		explain bool
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.BoolVar(&quiet, "q", false, "print results only")
	flag.BoolVar(&explain, "e", false, "print the reason for failed evaluations")
	flag.Parse()

	exprs := append([]string(nil), flag.Args()...)
	lines, err := inlines(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	exprs = append(exprs, lines...)

	for _, e := range exprs {
		if strings.TrimSpace(e) == "" {
			continue
		}
		r := result(e, explain)
		if quiet {
			fmt.Println(r)
			continue
		}
		fmt.Printf("%s = %s\n", e, r)
	}
}

func result(e string, explain bool) string {
	if !explain {
		return tally.Evaluate(e)
	}
	v, err := tally.EvaluateErr(e)
	if err != nil {
		return err.Error()
	}
	return tally.Format(v)
}

// inlines reads one expression per line from the named file, from stdin when
// the name is "-", or from stdin when no name and no args were given.
func inlines(inname string, std bool) ([]string, error) {
	var f *os.File
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		defer in.Close()
		f = in
	case inname == "-", std:
		f = os.Stdin
	}
	if f == nil {
		return nil, nil
	}
	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
