// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command omegaupload-client is a thin demonstration caller of the
// envelope and fragment libraries: it performs no encryption or decryption
// itself beyond invoking them, and uses only the standard library's flag
// package and net/http client. Elaborate CLI ergonomics are out of scope;
// the point of this command is to exercise internal/envelope and
// internal/fragment the way a real caller would.
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/omegaupload/omegaupload/internal/envelope"
	"github.com/omegaupload/omegaupload/internal/fragment"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "upload":
		err = runUpload(os.Args[2:])
	case "download":
		err = runDownload(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "omegaupload-client: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  omegaupload-client upload <server-url> <file> [-p]")
	fmt.Fprintln(os.Stderr, "  omegaupload-client download <full-url> [-o <file>]")
}

func runUpload(args []string) error {
	fs := flag.NewFlagSet("upload", flag.ExitOnError)
	usePassword := fs.Bool("p", false, "protect the paste with a password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		usage()
		return fmt.Errorf("upload: server-url and file are required")
	}
	serverURL := fs.Arg(0)
	filePath := fs.Arg(1)

	plaintext, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read %s: %w", filePath, err)
	}

	secret := envelope.NewRandomKey()
	if *usePassword {
		password, err := readPassword()
		if err != nil {
			return err
		}
		secret = envelope.NewPassword(password)
	}

	cipher := envelope.NewCipher()
	ciphertext, fragmentMaterial, err := cipher.Encrypt(plaintext, secret)
	if err != nil {
		return fmt.Errorf("encrypt: %w", err)
	}

	req, err := http.NewRequest(http.MethodPut, strings.TrimRight(serverURL, "/")+"/", bytes.NewReader(ciphertext))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if *usePassword {
		req.Header.Set("Requires-Password", "true")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("upload: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upload: server responded %d: %s", resp.StatusCode, body)
	}

	id := string(body)
	frag := fragment.Encode(fragment.Material{Bytes: fragmentMaterial, RequiresPassword: *usePassword})

	base, err := url.Parse(serverURL)
	if err != nil {
		return fmt.Errorf("parse server url: %w", err)
	}
	base.Path = strings.TrimRight(base.Path, "/") + "/" + id
	base.Fragment = ""

	fmt.Printf("%s#%s\n", base.String(), frag)
	return nil
}

func runDownload(args []string) error {
	fs := flag.NewFlagSet("download", flag.ExitOnError)
	outPath := fs.String("o", "", "write decrypted payload to this file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		usage()
		return fmt.Errorf("download: full-url is required")
	}
	fullURL := fs.Arg(0)

	parsed, err := url.Parse(fullURL)
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}
	frag, err := fragment.Decode(parsed.Fragment)
	if err != nil {
		return fmt.Errorf("parse fragment: %w", err)
	}
	parsed.Fragment = ""

	resp, err := http.Get(parsed.String())
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	ciphertext, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case 498: // password required
		if !frag.RequiresPassword {
			return fmt.Errorf("server requires a password but the fragment does not carry a salt")
		}
	case http.StatusNotFound:
		return fmt.Errorf("download: paste not found (unknown, expired, or already read)")
	default:
		return fmt.Errorf("download: server responded %d", resp.StatusCode)
	}

	password := ""
	if frag.RequiresPassword {
		password, err = readPassword()
		if err != nil {
			return err
		}
	}

	cipher := envelope.NewCipher()
	plaintext, err := cipher.Decrypt(ciphertext, frag.Bytes, password)
	if err != nil {
		return fmt.Errorf("decrypt: %w", err)
	}

	if *outPath == "" {
		_, err = os.Stdout.Write(plaintext)
		return err
	}
	return os.WriteFile(*outPath, plaintext, 0o600)
}

func readPassword() (string, error) {
	fmt.Fprint(os.Stderr, "password: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
