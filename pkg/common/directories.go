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

package ladder

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const FilePermissions = 0755

// HomeEnv is the environment variable which overrides the data directory.
const HomeEnv = "LADDER_HOME"

// Directory returns the root directory of ladder's data files. It is read
// on every call so that a .env file loaded after startup is respected.
func Directory() string {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir
	}

	return filepath.Join(xdg.Home, "ladder")
}

// ProfileDirectory returns the directory profiles are stored in.
func ProfileDirectory() string {
	return filepath.Join(Directory(), "profiles")
}

// TryMkdir creates the given directory, along with any missing parents, if
// it doesn't already exist.
func TryMkdir(dir string) error {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return os.MkdirAll(dir, FilePermissions)
	}

	return nil
}
