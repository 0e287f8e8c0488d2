package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"
)

// maxMnemonicInput bounds how much of stdin is read for a mnemonic.
const maxMnemonicInput = 4096

func readPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr) // newline after hidden input
	if err != nil {
		return nil, err
	}
	return password, nil
}

// promptPassphrase reads a passphrase twice and requires both to match.
func (a *app) promptPassphrase() (string, error) {
	pass, err := a.readSecret("Enter passphrase: ")
	if err != nil {
		return "", fmt.Errorf("read passphrase: %w", err)
	}
	confirm, err := a.readSecret("Confirm passphrase: ")
	if err != nil {
		return "", fmt.Errorf("read passphrase: %w", err)
	}
	if string(pass) != string(confirm) {
		return "", errors.New("passphrases do not match")
	}
	return string(pass), nil
}

// readMnemonic prompts for a mnemonic on a terminal, otherwise reads the
// first line of stdin.
func (a *app) readMnemonic() (string, error) {
	if f, ok := a.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := a.readSecret("Mnemonic: ")
		if err != nil {
			return "", fmt.Errorf("read mnemonic: %w", err)
		}
		return strings.TrimSpace(string(b)), nil
	}

	line, err := bufio.NewReader(io.LimitReader(a.stdin, maxMnemonicInput)).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read mnemonic: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", errors.New("no mnemonic provided")
	}
	return line, nil
}
