package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runegrid/runegrid/internal/codepoint"
	"github.com/runegrid/runegrid/internal/similar"
)

var infoCmd = &cobra.Command{
	Use:   "info <character|U+XXXX|decimal>",
	Short: "Show details for a single character",
	Long: `Show the full record for one character: code point, name, category,
type flags, HTML entity, CSS escape, and known look-alikes.

The argument may be the character itself, a U+XXXX code point, or a
decimal code point value.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	r, err := parseCodePoint(args[0])
	if err != nil {
		return err
	}

	rec, err := codepoint.NewRecord(r)
	if err != nil {
		return fmt.Errorf("invalid code point %q: %w", args[0], err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Glyph:       %s\n", rec.Glyph)
	fmt.Fprintf(out, "Code point:  %s\n", rec.Hex)
	fmt.Fprintf(out, "Decimal:     %d\n", rec.Decimal)
	fmt.Fprintf(out, "Name:        %s\n", rec.Name)
	if rec.CommonName != "" {
		fmt.Fprintf(out, "Unicode:     %s\n", rec.CommonName)
	}
	fmt.Fprintf(out, "Category:    %s\n", rec.CategoryName)
	fmt.Fprintf(out, "HTML entity: %s\n", rec.HTMLEntity)
	fmt.Fprintf(out, "CSS escape:  %s\n", rec.CSSEscape)
	fmt.Fprintf(out, "Types:       %s\n", typeFlags(r))

	if runes, ok := similar.Precomputed(r); ok && len(runes) > 0 {
		glyphs := make([]string, 0, len(runes))
		for _, s := range runes {
			glyphs = append(glyphs, string(s))
		}
		fmt.Fprintf(out, "Similar:     %s\n", strings.Join(glyphs, " "))
	}
	return nil
}

// parseCodePoint accepts a literal character, a U+XXXX form, or a
// decimal code point value.
func parseCodePoint(arg string) (rune, error) {
	runes := []rune(arg)
	if len(runes) == 1 {
		return runes[0], nil
	}

	lower := strings.ToLower(arg)
	if strings.HasPrefix(lower, "u+") {
		v, err := strconv.ParseInt(lower[2:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid code point %q", arg)
		}
		return rune(v), nil
	}

	if v, err := strconv.ParseInt(arg, 10, 32); err == nil {
		return rune(v), nil
	}
	return 0, fmt.Errorf("invalid code point %q", arg)
}

func typeFlags(r rune) string {
	var flags []string
	if codepoint.IsCharacter(r) {
		flags = append(flags, "character")
	}
	if codepoint.IsSymbol(r) {
		flags = append(flags, "symbol")
	}
	if codepoint.IsNumber(r) {
		flags = append(flags, "number")
	}
	if codepoint.IsEmoji(r) {
		flags = append(flags, "emoji")
	}
	if len(flags) == 0 {
		return "none"
	}
	return strings.Join(flags, ", ")
}
