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

package main

import (
	"io"
	"os"

	"github.com/codihuston/stdseam/pkg/fsys"
	"github.com/codihuston/stdseam/pkg/httpx"
)

// Dependencies are the seams seamctl talks to the outside world through
type Dependencies struct {
	FileSystem    fsys.FileSystem
	ClientFactory func(opts ...httpx.FactoryOption) httpx.ClientFactory
	Stdout        io.Writer
	Stderr        io.Writer
}

// DefaultDependencies uses the real filesystem, HTTP stack and stdio
func DefaultDependencies() *Dependencies {
	return &Dependencies{
		FileSystem:    fsys.NewOsFileSystem(),
		ClientFactory: httpx.NewClientFactory,
		Stdout:        os.Stdout,
		Stderr:        os.Stderr,
	}
}
