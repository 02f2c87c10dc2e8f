// Command genix generates secrets and estimates password strength from the
// terminal. The heavy lifting lives in internal/secret; this binary only
// parses flags and prints.
package main

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/genix/genix-go/internal/clipboard"
	"github.com/genix/genix-go/internal/secret"
	"github.com/genix/genix-go/internal/wordlist"
)

const usageText = `usage: genix <command> [flags]

commands:
  generate    generate secrets (see genix generate -h)
  check       estimate the entropy of a string: genix check [flags] <input>
  profile     print a detailed entropy breakdown: genix profile [flags] <input>

flags must come before the input string.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "generate":
		err = runGenerate(os.Args[2:])
	case "check":
		err = runCheck(os.Args[2:])
	case "profile":
		err = runProfile(os.Args[2:])
	case "help", "-h", "--help":
		fmt.Print(usageText)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		fmt.Fprint(os.Stderr, usageText)
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	length := fs.Int("length", 20, "length (characters, bytes or words depending on style)")
	count := fs.Int("count", 1, "number of items to generate")
	styleName := fs.String("style", "random", "style: random, pin, hex, base64, passphrase")
	toClipboard := fs.Bool("clipboard", false, "copy the first result to the clipboard")
	wordlistPath := fs.String("wordlist", "", "custom wordlist file for passphrase style")
	noAmbiguous := fs.Bool("no-ambiguous", false, "avoid ambiguous characters (1,l,I,0,O,|)")
	minEntropy := fs.Float64("min-entropy", math.NaN(), "minimum entropy in bits; length may be auto-increased")
	fs.Parse(args)

	if *length < 0 {
		return secret.ErrNegativeLength
	}
	if *count < 0 {
		return secret.ErrNegativeCount
	}

	style, err := secret.ParseStyle(*styleName)
	if err != nil {
		return err
	}

	opts := secret.Options{
		Style:       style,
		Length:      *length,
		Count:       *count,
		NoAmbiguous: *noAmbiguous,
	}
	if !math.IsNaN(*minEntropy) {
		opts.MinEntropyBits = minEntropy
	}
	if *wordlistPath != "" {
		opts.Words = wordlist.File{Path: *wordlistPath}
	}

	results, err := secret.GenerateMany(opts)
	if err != nil {
		return err
	}

	for _, line := range results {
		fmt.Println(line)
	}

	if *toClipboard && len(results) > 0 {
		if err := clipboard.Copy(results[0]); err != nil {
			fmt.Fprintln(os.Stderr, "warning: failed to copy to clipboard:", err)
		}
	}

	return nil
}

func runCheck(args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	styleName := fs.String("style", "random", "style hint: random, pin, hex, base64, passphrase")
	fs.Parse(args)

	input, err := singleInput(fs)
	if err != nil {
		return err
	}
	style, err := secret.ParseStyle(*styleName)
	if err != nil {
		return err
	}

	bits, err := secret.Estimate(input, style)
	if err != nil {
		return err
	}

	fmt.Printf("Estimated entropy: %.2f bits\n", bits)
	fmt.Printf("Verdict: %s\n", secret.Verdict(bits))
	return nil
}

func runProfile(args []string) error {
	fs := flag.NewFlagSet("profile", flag.ExitOnError)
	styleName := fs.String("style", "random", "style hint: random, pin, hex, base64, passphrase")
	fs.Parse(args)

	input, err := singleInput(fs)
	if err != nil {
		return err
	}
	style, err := secret.ParseStyle(*styleName)
	if err != nil {
		return err
	}

	p, err := secret.EstimateDetailed(input, style)
	if err != nil {
		return err
	}

	fmt.Printf("Profile for: %s (style: %s)\n", input, style)
	fmt.Printf("Entropy: %.2f bits\n", p.Bits)
	if style == secret.StylePassphrase {
		fmt.Printf("Passphrase words: %d (assumed wordlist size: %d)\n", p.WordCount, p.AssumedWordlistSize)
		fmt.Printf("Bits per word (assumed): %.2f\n", p.PerUnit)
	} else {
		fmt.Printf("Length: %d chars\n", p.Length)
		fmt.Printf("Charset size (inferred): %d symbols\n", p.CharsetSize)
		fmt.Printf("Bits/char: %.3f\n", p.PerUnit)
		fmt.Printf("Classes present: lower=%v, upper=%v, digits=%v, symbols=%v\n",
			p.HasLower, p.HasUpper, p.HasDigit, p.HasSymbol)
	}
	fmt.Printf("Verdict: %s\n", secret.Verdict(p.Bits))
	return nil
}

func singleInput(fs *flag.FlagSet) (string, error) {
	if fs.NArg() != 1 {
		return "", errors.New("expected exactly one input string (flags must come before it)")
	}
	return fs.Arg(0), nil
}
