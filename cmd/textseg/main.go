// Command textseg segments text from its arguments or from standard input
// into grapheme clusters, word tokens, or words, one segment per line.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scalecode-solutions/textseg"
)

func init() {
	log.SetPrefix("[textseg] ")
	log.SetFlags(0)
}

// input returns the text to segment: the joined arguments, or standard input
// if no arguments were given.
func input(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	text, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(text), nil
}

func graphemesCmd() *cobra.Command {
	var legacy *bool
	var offsets *bool

	graphemesCmd := cobra.Command{
		Use:   "graphemes [TEXT...]",
		Short: "split text into user-perceived characters",
		Run: func(cmd *cobra.Command, args []string) {
			text, err := input(args)
			if err != nil {
				log.Fatalln(err)
			}
			var g *textseg.Graphemes
			if *legacy {
				g = textseg.NewLegacyGraphemes(text)
			} else {
				g = textseg.NewGraphemes(text)
			}
			for g.Next() {
				if *offsets {
					from, to := g.Positions()
					fmt.Printf("%d\t%d\t%s\n", from, to, g.Str())
				} else {
					fmt.Println(g.Str())
				}
			}
		},
	}

	legacy = graphemesCmd.Flags().Bool("legacy", false,
		"use legacy grapheme clusters instead of extended ones")
	offsets = graphemesCmd.Flags().Bool("offsets", false,
		"prefix each segment with its byte offsets")

	return &graphemesCmd
}

func tokensCmd() *cobra.Command {
	var offsets *bool

	tokensCmd := cobra.Command{
		Use:   "tokens [TEXT...]",
		Short: "split text into word tokens, including whitespace and punctuation",
		Run: func(cmd *cobra.Command, args []string) {
			text, err := input(args)
			if err != nil {
				log.Fatalln(err)
			}
			w := textseg.NewWords(text)
			for w.Next() {
				if *offsets {
					from, to := w.Positions()
					fmt.Printf("%d\t%d\t%q\n", from, to, w.Str())
				} else {
					fmt.Printf("%q\n", w.Str())
				}
			}
		},
	}

	offsets = tokensCmd.Flags().Bool("offsets", false,
		"prefix each token with its byte offsets")

	return &tokensCmd
}

func wordsCmd() *cobra.Command {
	wordsCmd := cobra.Command{
		Use:   "words [TEXT...]",
		Short: "extract the words of the text, skipping whitespace and punctuation",
		Run: func(cmd *cobra.Command, args []string) {
			text, err := input(args)
			if err != nil {
				log.Fatalln(err)
			}
			u := textseg.NewUnicodeWords(text)
			for u.Next() {
				fmt.Println(u.Str())
			}
		},
	}

	return &wordsCmd
}

func main() {
	rootCmd := cobra.Command{
		Use:   "textseg",
		Short: "segment Unicode text into grapheme clusters and words",
	}
	rootCmd.AddCommand(graphemesCmd(), tokensCmd(), wordsCmd())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
