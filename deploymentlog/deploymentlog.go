// Package deploymentlog records contract deployments in a per-chain JSON
// file. Each file keeps the full deployment history, newest first, plus a
// "latest" section mapping every contract name to its most recent record.
package deploymentlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
)

// Contract is a single deployed contract within a history entry.
type Contract struct {
	Address       common.Address    `json:"address"`
	Proxy         bool              `json:"proxy"`
	DeploymentTxn common.Hash       `json:"deploymentTxn"`
	Constructor   map[string]string `json:"constructor"`
}

// Entry is one deployment event: the contracts it created and when.
type Entry struct {
	Contracts map[string]Contract `json:"contracts" validate:"required,min=1"`
	Timestamp uint64              `json:"timestamp" validate:"required"`
}

// Latest is the most recent record for a contract name.
type Latest struct {
	Address       common.Address `json:"address"`
	Proxy         bool           `json:"proxy"`
	DeploymentTxn common.Hash    `json:"deploymentTxn"`
	Timestamp     uint64         `json:"timestamp"`
}

// File is the on-disk deployment log for one chain.
type File struct {
	ChainID string            `json:"chainId" validate:"required"`
	Latest  map[string]Latest `json:"latest"`
	History []Entry           `json:"history"`
}

// DuplicateAddressError is returned when an address is already present in the
// deployment history.
type DuplicateAddressError struct {
	Address common.Address
}

// NewDuplicateAddressError creates a new DuplicateAddressError.
func NewDuplicateAddressError(address common.Address) *DuplicateAddressError {
	return &DuplicateAddressError{Address: address}
}

func (e *DuplicateAddressError) Error() string {
	return fmt.Sprintf("contract %s already found in deployment log", e.Address.Hex())
}

// PathFor returns the log file location for a chain under dir.
func PathFor(dir, chainID string) string {
	return filepath.Join(dir, "deployments", "json", chainID+".json")
}

// New returns an empty log for the given chain.
func New(chainID string) *File {
	return &File{
		ChainID: chainID,
		Latest:  map[string]Latest{},
		History: []Entry{},
	}
}

// Load reads and validates an existing log file.
func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse deployment log %s: %w", path, err)
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid deployment log %s: %w", path, err)
	}

	return &f, nil
}

// LoadOrNew reads the log for chainID under dir, starting a fresh one when
// no file exists yet.
func LoadOrNew(dir, chainID string) (*File, error) {
	f, err := Load(PathFor(dir, chainID))
	if os.IsNotExist(err) {
		return New(chainID), nil
	}

	return f, err
}

// Validate runs tag-based validation on the file.
func (f *File) Validate() error {
	return validator.New().Struct(f)
}

// Append adds a deployment event to the history. An address that already
// appears anywhere in the history is rejected.
func (f *File) Append(e Entry) error {
	if err := validator.New().Struct(e); err != nil {
		return err
	}

	for _, item := range f.History {
		for _, existing := range item.Contracts {
			for _, added := range e.Contracts {
				if existing.Address == added.Address {
					return NewDuplicateAddressError(added.Address)
				}
			}
		}
	}

	f.History = append(f.History, e)

	return nil
}

// Save writes the log to path, sorting the history newest first and
// recomputing the latest section.
func (f *File) Save(path string) error {
	sort.SliceStable(f.History, func(i, j int) bool {
		return f.History[i].Timestamp > f.History[j].Timestamp
	})
	f.rebuildLatest()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	blob, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, blob, 0o644)
}

func (f *File) rebuildLatest() {
	latest := map[string]Latest{}
	for _, item := range f.History {
		for name, c := range item.Contracts {
			if existing, ok := latest[name]; ok && existing.Timestamp >= item.Timestamp {
				continue
			}
			latest[name] = Latest{
				Address:       c.Address,
				Proxy:         c.Proxy,
				DeploymentTxn: c.DeploymentTxn,
				Timestamp:     item.Timestamp,
			}
		}
	}
	f.Latest = latest
}
