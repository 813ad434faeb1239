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

// Package fsys puts an interface in front of a filesystem. Files come back
// as iox streams, so code written against FileSystem works the same on
// disk and in memory.
package fsys

import (
	"os"

	"github.com/spf13/afero"

	"github.com/codihuston/stdseam/pkg/abstraction"
	"github.com/codihuston/stdseam/pkg/iox"
)

// FileSystem is a hierarchical filesystem.
type FileSystem interface {
	Name() string
	Open(name string) (iox.Stream, error)
	Create(name string) (iox.Stream, error)
	OpenFile(name string, flag int, perm os.FileMode) (iox.Stream, error)
	Stat(name string) (os.FileInfo, error)
	MkdirAll(path string, perm os.FileMode) error
	Remove(name string) error
	RemoveAll(path string) error
	Rename(oldname, newname string) error
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm os.FileMode) error
	ReadDir(name string) ([]os.FileInfo, error)
	Exists(name string) (bool, error)
}

// FS adapts an afero.Fs to FileSystem.
type FS struct {
	abstraction.Adapter[afero.Fs]
}

var _ FileSystem = (*FS)(nil)

// New wraps fs
func New(fs afero.Fs) *FS {
	return &FS{Adapter: abstraction.NewAdapter(fs)}
}

// ToFileSystem returns fs as a FileSystem, or nil if fs is nil
func ToFileSystem(fs afero.Fs) FileSystem {
	return abstraction.ToInterface(fs, func(fs afero.Fs) FileSystem {
		return New(fs)
	})
}

// NewOsFileSystem returns the operating system's filesystem
func NewOsFileSystem() *FS {
	return New(afero.NewOsFs())
}

// NewMemFileSystem returns an empty in-memory filesystem
func NewMemFileSystem() *FS {
	return New(afero.NewMemMapFs())
}

func (f *FS) Name() string {
	return f.Unwrap().Name()
}

func (f *FS) Open(name string) (iox.Stream, error) {
	return stream(f.Unwrap().Open(name))
}

func (f *FS) Create(name string) (iox.Stream, error) {
	return stream(f.Unwrap().Create(name))
}

func (f *FS) OpenFile(name string, flag int, perm os.FileMode) (iox.Stream, error) {
	return stream(f.Unwrap().OpenFile(name, flag, perm))
}

func stream(file afero.File, err error) (iox.Stream, error) {
	if err != nil {
		return nil, err
	}
	return iox.NewFileStream(file), nil
}

func (f *FS) Stat(name string) (os.FileInfo, error) {
	return f.Unwrap().Stat(name)
}

func (f *FS) MkdirAll(path string, perm os.FileMode) error {
	return f.Unwrap().MkdirAll(path, perm)
}

func (f *FS) Remove(name string) error {
	return f.Unwrap().Remove(name)
}

func (f *FS) RemoveAll(path string) error {
	return f.Unwrap().RemoveAll(path)
}

func (f *FS) Rename(oldname, newname string) error {
	return f.Unwrap().Rename(oldname, newname)
}

func (f *FS) ReadFile(name string) ([]byte, error) {
	return afero.ReadFile(f.Unwrap(), name)
}

func (f *FS) WriteFile(name string, data []byte, perm os.FileMode) error {
	return afero.WriteFile(f.Unwrap(), name, data, perm)
}

func (f *FS) ReadDir(name string) ([]os.FileInfo, error) {
	return afero.ReadDir(f.Unwrap(), name)
}

func (f *FS) Exists(name string) (bool, error) {
	return afero.Exists(f.Unwrap(), name)
}
