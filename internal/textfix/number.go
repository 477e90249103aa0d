package textfix

import (
	"regexp"
	"strconv"
	"strings"
)

// "1 296 20" -> 1296.20: one digit, a thousands group, then cents.
var spacedThousands = regexp.MustCompile(`^(\d)\s+(\d{3})\s+(\d{2})$`)

var nonNumeric = regexp.MustCompile(`[^0-9.]`)

// CleanNumber converts a noisy numeric token into a float64. It is total:
// every input, including the empty string and pure noise, yields a finite
// value, defaulting to 0.
func CleanNumber(raw string) float64 {
	if raw == "" {
		return 0.0
	}
	raw = strings.TrimSpace(raw)

	if m := spacedThousands.FindStringSubmatch(raw); m != nil {
		v, err := strconv.ParseFloat(m[1]+m[2]+"."+m[3], 64)
		if err != nil {
			return 0.0
		}
		return v
	}

	s := strings.NewReplacer("Q", "0", "O", "0", "l", "1").Replace(raw)
	s = strings.Join(strings.Fields(s), "")
	s = strings.ReplaceAll(s, ",", "")
	s = nonNumeric.ReplaceAllString(s, "")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0.0
	}
	return v
}

var digitRuns = regexp.MustCompile(`\d+`)

var moneyNoise = regexp.MustCompile(`[^\d\s,]`)

// CleanMoney extracts a monetary amount from a renewal notice money line by
// stripping OCR noise and concatenating the remaining digit runs. Total like
// CleanNumber; unusable input yields 0.
func CleanMoney(raw string) float64 {
	if raw == "" {
		return 0.0
	}
	raw = moneyNoise.ReplaceAllString(raw, "")
	runs := digitRuns.FindAllString(raw, -1)
	if len(runs) == 0 {
		return 0.0
	}
	v, err := strconv.ParseFloat(strings.Join(runs, ""), 64)
	if err != nil {
		return 0.0
	}
	return v
}

// amount tokens with optional comma groups and decimals, e.g. "12,500.00"
var amountToken = regexp.MustCompile(`[\d,]+\.\d+|[\d,]+`)

// MaxAmountInLine repairs digit confusions in line, then returns the largest
// numeric value found. Smaller incidental numbers (counts, dates) on the same
// line are discarded. Returns 0 when the line holds no number.
func MaxAmountInLine(line string) float64 {
	clean := DigitRules.Apply(line)
	max := 0.0
	for _, tok := range amountToken.FindAllString(clean, -1) {
		v, err := strconv.ParseFloat(strings.ReplaceAll(tok, ",", ""), 64)
		if err != nil {
			continue
		}
		if v > max {
			max = v
		}
	}
	return max
}
