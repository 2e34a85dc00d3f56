package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompt messages.
const (
	promptMaxRecipes   = "Enter the number of recipes to crawl: "
	msgInvalidInteger  = "Invalid input. Please enter a valid integer."
	msgPositiveInteger = "Please enter a positive integer."
)

// PromptMaxRecipes asks on w until r yields a positive integer.
// It returns an error if r is exhausted first.
func PromptMaxRecipes(r io.Reader, w io.Writer) (int, error) {
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, promptMaxRecipes)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, fmt.Errorf("reading recipe count: %w", err)
			}
			return 0, fmt.Errorf("reading recipe count: %w", io.ErrUnexpectedEOF)
		}

		n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			fmt.Fprintln(w, msgInvalidInteger)
			continue
		}
		if n <= 0 {
			fmt.Fprintln(w, msgPositiveInteger)
			continue
		}
		return n, nil
	}
}
