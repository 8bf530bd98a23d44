package search

import (
	"fmt"
	"strconv"
	"strings"
)

// hh.ru experience buckets.
const (
	ExpNone      = "noExperience"
	Exp0To1      = "between0And1"
	Exp1To3      = "between1And3"
	Exp3To6      = "between3And6"
	ExpMoreThan6 = "moreThan6"
)

// ParseExperience converts a human experience input ("0", "2", "1-3", "6+")
// into an hh.ru experience bucket. An empty input means "no filter" and maps
// to an empty bucket.
func ParseExperience(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", nil
	}

	if input == "0" {
		return ExpNone, nil
	}

	if strings.HasSuffix(input, "+") {
		if _, err := strconv.Atoi(strings.TrimSuffix(input, "+")); err != nil {
			return "", fmt.Errorf("invalid experience %q", input)
		}
		return ExpMoreThan6, nil
	}

	if strings.Contains(input, "-") {
		return parseExperienceRange(input)
	}

	years, err := strconv.Atoi(input)
	if err != nil || years < 0 {
		return "", fmt.Errorf("invalid experience %q", input)
	}
	return bucketForYears(years), nil
}

func parseExperienceRange(input string) (string, error) {
	parts := strings.SplitN(input, "-", 2)
	start, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	end, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil {
		return "", fmt.Errorf("invalid experience range %q", input)
	}
	if start > end || start < 0 || end < 0 {
		return "", fmt.Errorf("invalid experience range %q", input)
	}

	switch {
	case end < 1:
		return ExpNone, nil
	case start >= 6:
		return ExpMoreThan6, nil
	case start >= 3:
		return Exp3To6, nil
	case start >= 1:
		return Exp1To3, nil
	default:
		return Exp0To1, nil
	}
}

func bucketForYears(years int) string {
	switch {
	case years == 0:
		return ExpNone
	case years < 3:
		return Exp1To3
	case years < 6:
		return Exp3To6
	default:
		return ExpMoreThan6
	}
}
