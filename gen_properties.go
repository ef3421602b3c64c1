//go:build generate

// This program generates the grapheme cluster and word break property tables
// from the Unicode Character Database auxiliary files, merging in the
// Extended_Pictographic property from the emoji data file.
//
//go:generate go run gen_properties.go

package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"log"
	"net/http"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	graphemeURL = `https://www.unicode.org/Public/14.0.0/ucd/auxiliary/GraphemeBreakProperty.txt`
	wordURL     = `https://www.unicode.org/Public/14.0.0/ucd/auxiliary/WordBreakProperty.txt`
	emojiURL    = `https://www.unicode.org/Public/14.0.0/ucd/emoji/emoji-data.txt`
)

// The regular expression for a line containing a code point range and a
// property value.
var propertyPattern = regexp.MustCompile(`^([0-9A-F]{4,6})(\.\.([0-9A-F]{4,6}))?\s*;\s*([A-Za-z0-9_]+)\s*#\s(.+)$`)

// A property is a code point range tagged with a property value and the
// comment from the source file.
type property struct {
	from, to int
	value    string
	comment  string
}

func main() {
	log.SetPrefix("gen_properties: ")
	log.SetFlags(0)

	emoji, err := parse(emojiURL, "Extended_Pictographic")
	if err != nil {
		log.Fatal(err)
	}

	graphemes, err := parse(graphemeURL, "")
	if err != nil {
		log.Fatal(err)
	}
	if err := write("graphemeproperties.go", "graphemeCodePoints", graphemeURL, merge(graphemes, emoji, false)); err != nil {
		log.Fatal(err)
	}

	words, err := parse(wordURL, "")
	if err != nil {
		log.Fatal(err)
	}
	if err := write("wordproperties.go", "workBreakCodePoints", wordURL, merge(words, emoji, true)); err != nil {
		log.Fatal(err)
	}
}

// parse parses a UCD property file, keeping only the properties matching the
// given value ("" keeps all of them).
func parse(url, keep string) ([]property, error) {
	log.Printf("Parsing %s", url)
	res, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var properties []property
	scanner := bufio.NewScanner(res.Body)
	num := 0
	for scanner.Scan() {
		num++
		line := strings.TrimSpace(scanner.Text())

		// Skip comments and empty lines.
		if strings.HasPrefix(line, "#") || line == "" {
			continue
		}

		fields := propertyPattern.FindStringSubmatch(line)
		if fields == nil {
			return nil, fmt.Errorf("line %d: no property found", num)
		}
		if keep != "" && fields[4] != keep {
			continue
		}
		from, err := strconv.ParseInt(fields[1], 16, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", num, err)
		}
		to := from
		if fields[3] != "" {
			to, err = strconv.ParseInt(fields[3], 16, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %v", num, err)
			}
		}
		properties = append(properties, property{int(from), int(to), fields[4], fields[5]})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return properties, nil
}

// merge combines a break property list with the Extended_Pictographic ranges.
// The two must not overlap, with one exception: in the word break table, code
// points that carry both ALetter and Extended_Pictographic become the
// combined ALetterExtPict property (word indicates which table is built).
func merge(breaks, emoji []property, word bool) []property {
	perPoint := map[int]property{}
	for _, p := range breaks {
		for cp := p.from; cp <= p.to; cp++ {
			perPoint[cp] = property{cp, cp, p.value, p.comment}
		}
	}
	for _, p := range emoji {
		for cp := p.from; cp <= p.to; cp++ {
			cur, ok := perPoint[cp]
			switch {
			case !ok:
				perPoint[cp] = property{cp, cp, "Extended_Pictographic", p.comment}
			case word && cur.value == "ALetter":
				perPoint[cp] = property{cp, cp, "ALetterExtPict", cur.comment}
			default:
				log.Fatalf("U+%04X is both %s and Extended_Pictographic", cp, cur.value)
			}
		}
	}

	// Collapse per-code-point properties back into ranges.
	points := make([]int, 0, len(perPoint))
	for cp := range perPoint {
		points = append(points, cp)
	}
	sort.Ints(points)
	var properties []property
	for _, cp := range points {
		p := perPoint[cp]
		if n := len(properties); n > 0 && properties[n-1].to == cp-1 && properties[n-1].value == p.value {
			properties[n-1].to = cp
			continue
		}
		properties = append(properties, p)
	}

	// Avoid overflow during binary search.
	if len(properties) >= 1<<31 {
		log.Fatal(errors.New("too many properties"))
	}
	return properties
}

// write emits a sorted property table to the target file.
func write(file, varName, url string, properties []property) error {
	var buf bytes.Buffer
	buf.WriteString(`// Code generated via go generate from gen_properties.go. DO NOT EDIT.

package textseg

// ` + varName + ` are taken from
// ` + url + `
// and ` + emojiURL + `
// ("Extended_Pictographic" only) on ` + time.Now().Format("January 2, 2006") + `. See
// https://www.unicode.org/license.html for the Unicode license agreement.
var ` + varName + ` = [][3]int{
`)
	for _, p := range properties {
		fmt.Fprintf(&buf, "\t{0x%04X, 0x%04X, %s}, // %s\n", p.from, p.to, translateValue(p.value), p.comment)
	}
	buf.WriteString("}\n")

	// Format the Go code.
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("gofmt: %v", err)
	}

	log.Printf("Writing to %s", file)
	return os.WriteFile(file, formatted, 0644)
}

// translateValue translates a property value from the UCD files to a Go
// constant.
func translateValue(value string) string {
	switch value {
	case "Regional_Indicator":
		return "prRegionalIndicator"
	case "Extended_Pictographic":
		return "prExtendedPictographic"
	case "ALetterExtPict":
		return "prALetterExtPict"
	default:
		return "pr" + strings.ReplaceAll(value, "_", "")
	}
}
