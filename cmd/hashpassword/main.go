// Command hashpassword generates the bcrypt hash for the shared admin
// password, for use as TT_ADMIN_PASSWORD_HASH. The prompt is hidden so
// the password never lands in shell history or scrollback.
package main

import (
	"fmt"
	"os"
	"syscall"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

func main() {
	password := readPassword("Enter admin password:   ")
	confirm := readPassword("Confirm admin password: ")

	if password == "" {
		fmt.Fprintln(os.Stderr, "Password cannot be empty")
		os.Exit(1)
	}
	if password != confirm {
		fmt.Fprintln(os.Stderr, "Passwords do not match")
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error hashing password: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("TT_ADMIN_PASSWORD_HASH=%s\n", hash)
}

// readPassword prompts on stderr and reads without echo. Falls back to
// plain reads when stdin is not a terminal (e.g. piped input).
func readPassword(prompt string) string {
	fmt.Fprint(os.Stderr, prompt)
	if !term.IsTerminal(int(syscall.Stdin)) {
		var password string
		fmt.Scanln(&password)
		return password
	}
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading password: %v\n", err)
		os.Exit(1)
	}
	return string(password)
}
