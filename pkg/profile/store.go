// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package profile

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	ladder "laptudirm.com/x/ladder/pkg/common"
	"laptudirm.com/x/ladder/pkg/internal/util"
)

const extension = ".yaml"

var (
	ErrNotFound    = errors.New("profile not found")
	ErrInvalidName = errors.New("invalid profile name")
)

// ValidateName checks that a profile name can be used as a file name.
func ValidateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return errors.Wrapf(ErrInvalidName, "%q", name)
	}

	return nil
}

// Store is a directory of YAML profile documents, one file per profile.
type Store struct {
	Dir string
}

// NewStore returns a Store backed by the given directory. The directory is
// created when the first profile is saved.
func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

// DefaultStore returns the Store in ladder's data directory.
func DefaultStore() *Store {
	return NewStore(ladder.ProfileDirectory())
}

func (store *Store) path(name string) string {
	return filepath.Join(store.Dir, name+extension)
}

// Save writes the profile to the store, replacing any previous version.
func (store *Store) Save(profile *Profile) error {
	if err := ValidateName(profile.Name); err != nil {
		return err
	}

	if err := ladder.TryMkdir(store.Dir); err != nil {
		return errors.Wrap(err, "unable to create profile directory")
	}

	data, err := yaml.Marshal(profile)
	if err != nil {
		return errors.Wrapf(err, "unable to encode profile %s", profile.Name)
	}

	if err := os.WriteFile(store.path(profile.Name), data, 0644); err != nil {
		return errors.Wrapf(err, "unable to write profile %s", profile.Name)
	}

	logrus.WithFields(logrus.Fields{
		"name":     profile.Name,
		"net-wins": profile.State.NetWins,
		"matches":  profile.Matches(),
	}).Debug("Saved profile")

	return nil
}

// Load reads the named profile from the store.
func (store *Store) Load(name string) (*Profile, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(store.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrapf(ErrNotFound, "%s", name)
	} else if err != nil {
		return nil, errors.Wrapf(err, "unable to read profile %s", name)
	}

	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, errors.Wrapf(err, "unable to decode profile %s", name)
	}

	// The file name is the source of truth for the profile's name.
	profile.Name = name

	logrus.WithFields(logrus.Fields{
		"name":      name,
		"threshold": profile.Threshold,
	}).Debug("Loaded profile")

	return &profile, nil
}

// Exists reports whether the named profile is in the store.
func (store *Store) Exists(name string) bool {
	_, err := os.Stat(store.path(name))
	return err == nil
}

// List returns the names of all the profiles in the store in natural order.
func (store *Store) List() ([]string, error) {
	entries, err := os.ReadDir(store.Dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, errors.Wrap(err, "unable to list profiles")
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != extension {
			continue
		}

		names = append(names, strings.TrimSuffix(entry.Name(), extension))
	}

	sort.Slice(names, func(i, j int) bool {
		return util.AlphanumCompare(names[i], names[j])
	})

	return names, nil
}

// Remove deletes the named profile from the store.
func (store *Store) Remove(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	err := os.Remove(store.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return errors.Wrapf(ErrNotFound, "%s", name)
	}

	return errors.Wrapf(err, "unable to remove profile %s", name)
}
