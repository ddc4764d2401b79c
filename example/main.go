package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fernandezvara/passcheck"
)

func main() {
	fmt.Println("Password Evaluation Examples")
	fmt.Println("============================")
	fmt.Println()

	// Example 1: Basic usage with embedded dictionary
	fmt.Println("1. Basic Usage (Embedded Dictionary)")
	fmt.Println("------------------------------------")
	r, err := passcheck.Evaluate("password")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Password: `password`\n")
	fmt.Printf("Result: Score=%d, Strength=%s, Common=%v\n", r.Score, r.Strength, r.IsCommon)
	fmt.Println()

	// Example 2: Custom dictionary
	fmt.Println("2. Custom Dictionary Usage")
	fmt.Println("--------------------------")
	customDict := `password
123456
qwerty
admin
letmein
welcome
monkey
dragon
master
sunshine
superman
michael
george
jennifer
harley
rangers`

	dict, err := passcheck.ParseDictionary(customDict)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	ev := passcheck.New(passcheck.WithDictionary(dict))

	for _, pwd := range []string{"Superman", "superman123!"} {
		r, _ = ev.Evaluate(pwd)
		fmt.Printf("Password: `%s`\n", pwd)
		fmt.Printf("Result: Score=%d, Strength=%s, Common=%v\n", r.Score, r.Strength, r.IsCommon)
	}
	fmt.Println()

	// Example 3: Invalid input
	fmt.Println("3. Invalid Input")
	fmt.Println("----------------")
	for _, v := range []any{nil, 42} {
		_, err := passcheck.EvaluateValue(v)
		fmt.Printf("Value: %v -> invalid=%v (%v)\n", v, errors.Is(err, passcheck.ErrInvalidInput), err)
	}
	fmt.Println()

	// Example 4: Generated password
	fmt.Println("4. Generated Password")
	fmt.Println("---------------------")
	if pwd, err := passcheck.Generate(16); err == nil {
		r, _ = passcheck.Evaluate(pwd)
		fmt.Printf("Generated a %d-character password: Score=%d, Strength=%s\n", r.Length, r.Score, r.Strength)
	}
	fmt.Println()

	// Example 5: Comprehensive table
	fmt.Println("5. Evaluation Table")
	fmt.Println("===================")
	fmt.Println()

	fmt.Println("| Password                     | Score | Strength | Entropy | Findings")
	fmt.Println("|------------------------------|-------|----------|---------|---------")

	passwords := []string{
		"password",
		"p@ssw0rd",
		"qwerty",
		"aaaaaa",
		"Xk9$mP2!vLq",
		"12345678",
		"abcdefg",
		"P@ssword123",
		"admin2023!",
		"letmein!!",
		"Abc123!",
		"MyDogName1",
		"Summer2024$",
		"!@#$%^&*",
		"aB3!aB3!",
		"correcthorsebatterystaple",
		"Tr0ub4dor&3",
		"p@ssw0rd123",
		"keyboardcat",
		"11111111",
		"password123",
	}

	for _, pwd := range passwords {
		r, err := passcheck.Evaluate(pwd)
		if err != nil {
			continue
		}
		fmt.Printf("| %-28s | %5d | %-8s | %7.2f | %s\n",
			"`"+pwd+"`", r.Score, r.Strength, r.Entropy, findings(r))
	}
}

// findings summarises why a password lost points.
func findings(r *passcheck.Report) string {
	var out []string
	if r.IsCommon {
		out = append(out, "common")
	}
	for _, p := range r.Patterns {
		out = append(out, string(p))
	}
	if len(out) == 0 {
		return "none"
	}
	return strings.Join(out, " + ")
}
