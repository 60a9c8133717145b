package cli

import (
	"errors"
	"strconv"
	"strings"
)

// validateNonNegativeNumber accepts blank (read as zero) or a
// non-negative number.
func validateNonNegativeNumber(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errors.New("enter a number")
	}
	if v < 0 {
		return errors.New("must not be negative")
	}
	return nil
}

// validateCompetencyList accepts blank or comma-separated area=hours pairs.
func validateCompetencyList(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	_, err := parseCompetencyPairs(strings.Split(s, ","))
	return err
}

func atoiOrZero(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

func atofOrZero(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
