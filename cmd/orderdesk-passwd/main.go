// Command orderdesk-passwd prints a STAFF_ACCOUNTS entry for a console operator.
//
//	orderdesk-passwd -login admin -password secret
//
// When -password is omitted the password is read from the first line of stdin.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/polkiloo/orderdesk/internal/pkg/auth"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "orderdesk-passwd: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("orderdesk-passwd", flag.ContinueOnError)
	login := fs.String("login", "", "staff login")
	password := fs.String("password", "", "staff password, read from stdin when empty")
	cost := fs.Int("cost", bcrypt.DefaultCost, "bcrypt cost")
	if err := fs.Parse(args); err != nil {
		return err
	}

	name := strings.TrimSpace(*login)
	if name == "" || strings.ContainsAny(name, ":;") {
		return errors.New("login must be non-empty and must not contain ':' or ';'")
	}

	secret := *password
	if secret == "" {
		line, err := bufio.NewReader(stdin).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read password: %w", err)
		}
		secret = strings.TrimRight(line, "\r\n")
	}
	if secret == "" {
		return errors.New("password must not be empty")
	}

	hash, err := auth.NewBcryptHasher(*cost).Hash(secret)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "%s:%s\n", name, hash)
	return err
}
