package prompt

import (
	"fmt"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/term"
)

// ReadSecret prompts on stderr and reads a secret from the terminal
// without echoing it. It fails when stdin is not a terminal, so a secret
// is never silently read from a pipe.
func ReadSecret(message string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", goerr.New("stdin is not a terminal, cannot prompt for secret")
	}

	fmt.Fprint(os.Stderr, message)
	secret, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read secret from terminal")
	}

	return string(secret), nil
}
