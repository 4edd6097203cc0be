// Package credentials implements the local registry credential file.
//
// The file is a JSON array of records, one per registry host:
//
//	[{"url": "registry.example.com", "auth": "dXNlcjpwYXNz"}]
//
// where auth is base64("username:password"). The store is loaded fully into
// memory, mutated there and written back with an explicit Save. Save is not
// crash-atomic and nothing locks the file between Load and Save.
package credentials

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Record is a single registry login.
type Record struct {
	URL  string `json:"url"`
	Auth string `json:"auth"`
}

// NewRecord encodes username and password for host.
func NewRecord(host, username, password string) Record {
	return Record{
		URL:  host,
		Auth: base64.StdEncoding.EncodeToString([]byte(username + ":" + password)),
	}
}

// Credentials decodes the username and password held by the record.
// Invalid UTF-8 is replaced rather than rejected so hand-edited files stay usable.
func (r Record) Credentials() (username, password string, err error) {
	raw, err := base64.StdEncoding.DecodeString(r.Auth)
	if err != nil {
		return "", "", fmt.Errorf("%w for %s: %w", ErrCorruptCredential, r.URL, err)
	}
	idx := bytes.IndexByte(raw, ':')
	if idx < 0 {
		return "", "", fmt.Errorf("%w for %s: missing separator", ErrCorruptCredential, r.URL)
	}
	return strings.ToValidUTF8(string(raw[:idx]), "�"),
		strings.ToValidUTF8(string(raw[idx+1:]), "�"), nil
}

// Store is the in-memory view of the credential file. It is not safe for
// concurrent use.
type Store struct {
	records []Record
}

// Load reads the credential file at path. A missing or empty file yields an
// empty store; the file is only created by Save.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Store{}, nil
		}
		return nil, fmt.Errorf("open auth file: %w", err)
	}
	defer f.Close()
	return read(f)
}

func read(r io.Reader) (*Store, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read auth file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return &Store{}, nil
	}
	var records []Record
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return &Store{records: records}, nil
}

// Save truncates the file at path and writes every record to it.
func (s *Store) Save(path string) error {
	records := s.records
	if records == nil {
		records = []Record{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}

	f, err := create(path)
	if err != nil {
		return err
	}
	if err := f.Truncate(0); err != nil {
		f.Close()
		return fmt.Errorf("truncate auth file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write auth file: %w", err)
	}
	return f.Close()
}

// Set adds the record, replacing an existing one for the same host in place.
func (s *Store) Set(rec Record) {
	if i := s.index(rec.URL); i >= 0 {
		s.records[i] = rec
		return
	}
	s.records = append(s.records, rec)
}

// Remove deletes the record for host.
func (s *Store) Remove(host string) error {
	i := s.index(host)
	if i < 0 {
		return fmt.Errorf("%w: auth info of %s", ErrNotFound, host)
	}
	s.records = append(s.records[:i], s.records[i+1:]...)
	return nil
}

// Resolve returns the username and password stored for host.
func (s *Store) Resolve(host string) (username, password string, err error) {
	i := s.index(host)
	if i < 0 {
		return "", "", fmt.Errorf("%w: %s has no login info", ErrNotFound, host)
	}
	return s.records[i].Credentials()
}

func (s *Store) Len() int { return len(s.records) }

// Records returns a copy of the stored records in file order.
func (s *Store) Records() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Hosts lists the hosts with stored credentials.
func (s *Store) Hosts() []string {
	hosts := make([]string, 0, len(s.records))
	for _, r := range s.records {
		hosts = append(hosts, r.URL)
	}
	return hosts
}

func (s *Store) index(host string) int {
	for i, r := range s.records {
		if r.URL == host {
			return i
		}
	}
	return -1
}

func create(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("create auth dir: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0600)
	if err != nil {
		return nil, fmt.Errorf("open auth file: %w", err)
	}
	return f, nil
}
