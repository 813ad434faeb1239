/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package fsys

import (
	"os"

	"github.com/codihuston/stdseam/pkg/iox"
)

// MockFileSystem implements FileSystem for testing. Operations without a
// Func field fall through to an in-memory filesystem.
type MockFileSystem struct {
	MkdirAllFunc  func(path string, perm os.FileMode) error
	RemoveAllFunc func(path string) error
	OpenFileFunc  func(name string, flag int, perm os.FileMode) (iox.Stream, error)
	RenameFunc    func(oldname, newname string) error

	CreatedDirs  []string
	RemovedPaths []string
	OpenedFiles  []string

	mem *FS
}

var _ FileSystem = (*MockFileSystem)(nil)

// NewMockFileSystem creates a mock backed by an empty in-memory filesystem
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		CreatedDirs:  make([]string, 0),
		RemovedPaths: make([]string, 0),
		OpenedFiles:  make([]string, 0),
		mem:          NewMemFileSystem(),
	}
}

func (m *MockFileSystem) Name() string {
	return "MockFileSystem"
}

func (m *MockFileSystem) Open(name string) (iox.Stream, error) {
	return m.OpenFile(name, os.O_RDONLY, 0)
}

func (m *MockFileSystem) Create(name string) (iox.Stream, error) {
	return m.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o666)
}

func (m *MockFileSystem) OpenFile(name string, flag int, perm os.FileMode) (iox.Stream, error) {
	m.OpenedFiles = append(m.OpenedFiles, name)
	if m.OpenFileFunc != nil {
		return m.OpenFileFunc(name, flag, perm)
	}
	return m.mem.OpenFile(name, flag, perm)
}

func (m *MockFileSystem) Stat(name string) (os.FileInfo, error) {
	return m.mem.Stat(name)
}

func (m *MockFileSystem) MkdirAll(path string, perm os.FileMode) error {
	m.CreatedDirs = append(m.CreatedDirs, path)
	if m.MkdirAllFunc != nil {
		return m.MkdirAllFunc(path, perm)
	}
	return m.mem.MkdirAll(path, perm)
}

func (m *MockFileSystem) Remove(name string) error {
	m.RemovedPaths = append(m.RemovedPaths, name)
	return m.mem.Remove(name)
}

func (m *MockFileSystem) RemoveAll(path string) error {
	m.RemovedPaths = append(m.RemovedPaths, path)
	if m.RemoveAllFunc != nil {
		return m.RemoveAllFunc(path)
	}
	return m.mem.RemoveAll(path)
}

func (m *MockFileSystem) Rename(oldname, newname string) error {
	if m.RenameFunc != nil {
		return m.RenameFunc(oldname, newname)
	}
	return m.mem.Rename(oldname, newname)
}

func (m *MockFileSystem) ReadFile(name string) ([]byte, error) {
	return m.mem.ReadFile(name)
}

func (m *MockFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	return m.mem.WriteFile(name, data, perm)
}

func (m *MockFileSystem) ReadDir(name string) ([]os.FileInfo, error) {
	return m.mem.ReadDir(name)
}

func (m *MockFileSystem) Exists(name string) (bool, error) {
	return m.mem.Exists(name)
}
