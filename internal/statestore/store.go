// Copyright 2021 Adam Chalkley
//
// https://github.com/atc0005/check-icmp
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package statestore

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Environment variables consulted when resolving the state directory.
// MP_STATE_PATH lets an operator point a single invocation at an
// alternate directory; it is ignored when the process is running setuid,
// since trusting an inherited environment variable for a filesystem path
// in that situation would let an unprivileged invoker redirect writes a
// privileged one makes.
const (
	EnvStatePath          = "MP_STATE_PATH"
	EnvStateDirPrefix     = "NP_STATE_DIR_PREFIX"
	DefaultStateDirPrefix = "/var/tmp/check-icmp"
)

const formatVersion = 1

// Sentinel errors.
var (
	// ErrNotFound is returned by Read when no usable record exists for the
	// key: the file is missing, truncated, carries a future timestamp, or
	// fails to parse. All of these are treated identically by callers: "no
	// prior state to compare against."
	ErrNotFound = errors.New("statestore: no record found")

	// ErrInvalidKey is returned when an explicit key contains characters
	// outside [A-Za-z0-9_], the same character class np_state's age-old
	// convention restricts keys to so they can be used unescaped as path
	// components.
	ErrInvalidKey = errors.New("statestore: key must match [A-Za-z0-9_]+")
)

// Record is one stored value: an opaque payload string plus the metadata
// needed to decide whether it is still usable.
type Record struct {
	DataVersion int
	Timestamp   time.Time
	Payload     string
}

// Store is a handle to a plugin's state directory. Construct with Open.
type Store struct {
	dir         string
	dataVersion int
}

// Open resolves the on-disk directory for pluginName and returns a Store.
// dataVersion should be bumped by callers whenever the payload format for
// this plugin changes incompatibly; Read rejects records written under a
// different DataVersion.
func Open(pluginName string, dataVersion int) (*Store, error) {
	prefix := os.Getenv(EnvStateDirPrefix)
	if prefix == "" {
		prefix = DefaultStateDirPrefix
	}

	if v, ok := os.LookupEnv(EnvStatePath); ok && v != "" && os.Geteuid() == os.Getuid() {
		prefix = v
	}

	dir := filepath.Join(prefix, strconv.Itoa(os.Geteuid()), pluginName)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("statestore: create state directory: %w", err)
	}

	return &Store{dir: dir, dataVersion: dataVersion}, nil
}

// Key derives the filename used to store state for the given argument
// vector, matching the convention of keying state files by the
// invocation's arguments so two differently-configured checks of the same
// plugin never collide. The key is the hex-encoded SHA-256 digest of the
// arguments joined by NUL.
func Key(argv []string) string {
	h := sha256.New()
	h.Write([]byte(strings.Join(argv, "\x00")))
	return hex.EncodeToString(h.Sum(nil))
}

// ValidateKey reports whether an explicit (non-derived) key is safe to
// use as a path component.
func ValidateKey(key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return ErrInvalidKey
		}
	}
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key)
}

// Read loads the record stored under key. It returns ErrNotFound (never a
// wrapped I/O error) for any condition that makes the record unusable:
// missing file, malformed content, or a timestamp in the future (which
// can only mean clock skew or a corrupted write, either way making the
// record untrustworthy).
func (s *Store) Read(key string) (Record, error) {
	f, err := os.Open(s.path(key))
	if err != nil {
		return Record{}, ErrNotFound
	}
	defer f.Close()

	rec, err := parseRecord(f)
	if err != nil {
		return Record{}, ErrNotFound
	}

	if rec.DataVersion != s.dataVersion {
		return Record{}, ErrNotFound
	}
	if rec.Timestamp.After(time.Now()) {
		return Record{}, ErrNotFound
	}

	return rec, nil
}

// parseRecord reads a positional-line record: any number of leading
// comment lines (beginning with '#'), then a bare format-version line,
// then a bare data-version line, then a bare unix-timestamp line, then
// the payload occupying every remaining line. There are no field names on
// the wire; position alone carries meaning.
func parseRecord(f *os.File) (Record, error) {
	var lines []string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return Record{}, err
	}

	i := 0
	for i < len(lines) && strings.HasPrefix(lines[i], "#") {
		i++
	}
	if i+3 > len(lines) {
		return Record{}, errors.New("statestore: truncated record")
	}

	v, err := strconv.Atoi(lines[i])
	if err != nil || v != formatVersion {
		return Record{}, fmt.Errorf("statestore: unsupported format_version %q", lines[i])
	}
	i++

	dataVersion, err := strconv.Atoi(lines[i])
	if err != nil {
		return Record{}, fmt.Errorf("statestore: malformed data_version %q", lines[i])
	}
	i++

	sec, err := strconv.ParseInt(lines[i], 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("statestore: malformed timestamp %q", lines[i])
	}
	i++

	return Record{
		DataVersion: dataVersion,
		Timestamp:   time.Unix(sec, 0),
		Payload:     strings.Join(lines[i:], "\n"),
	}, nil
}

// Write atomically stores payload under key with the Store's configured
// DataVersion and the current time. The record lands in a temporary file
// in the same directory as the final path, is synced to stable storage,
// and is then renamed into place, so a concurrent reader (or a crash
// mid-write) never observes a partially written record.
func (s *Store) Write(key, payload string) error {
	final := s.path(key)

	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("statestore: create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	var b strings.Builder
	fmt.Fprintf(&b, "# check-icmp state file, generated -- do not edit\n")
	fmt.Fprintf(&b, "%d\n", formatVersion)
	fmt.Fprintf(&b, "%d\n", s.dataVersion)
	fmt.Fprintf(&b, "%d\n", time.Now().Unix())
	b.WriteString(payload)

	if _, err := tmp.WriteString(b.String()); err != nil {
		tmp.Close()
		return fmt.Errorf("statestore: write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("statestore: sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("statestore: close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o600); err != nil {
		return fmt.Errorf("statestore: chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, final); err != nil {
		return fmt.Errorf("statestore: rename into place: %w", err)
	}

	return nil
}
