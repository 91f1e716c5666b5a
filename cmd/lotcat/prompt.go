package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// promptRequired asks for a non-empty line, re-prompting until one is given.
func promptRequired(r *bufio.Reader, label string) (string, error) {
	for {
		fmt.Printf("%s: ", label)
		line, err := r.ReadString('\n')
		value := strings.TrimSpace(line)
		if value != "" {
			return value, nil
		}
		if err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		fmt.Printf("%s is required\n", label)
	}
}

// promptPrice asks for a positive number, re-prompting on invalid input.
func promptPrice(r *bufio.Reader, label string) (float64, error) {
	for {
		fmt.Printf("%s: ", label)
		line, err := r.ReadString('\n')
		value := strings.TrimSpace(line)
		if value != "" {
			price, perr := strconv.ParseFloat(value, 64)
			if perr == nil && price > 0 {
				return price, nil
			}
		}
		if err != nil {
			return 0, fmt.Errorf("reading input: %w", err)
		}
		fmt.Printf("%s must be a positive number\n", label)
	}
}

// promptConfirm asks a yes/no question, defaulting to no.
func promptConfirm(r *bufio.Reader, message string) (bool, error) {
	fmt.Printf("%s [y/N]: ", message)
	line, err := r.ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	if answer == "" && err != nil {
		return false, fmt.Errorf("reading input: %w", err)
	}
	return answer == "y" || answer == "yes", nil
}
