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

//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package handle

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Duplicate returns a new handle owning a duplicate of the descriptor.
// The copy is close-on-exec and stays open when h is closed.
func (h *FileHandle) Duplicate() (*FileHandle, error) {
	rc, err := h.SyscallConn()
	if err != nil {
		return nil, fmt.Errorf("failed to duplicate %s: %w", h.Name(), err)
	}
	var (
		nfd    int
		dupErr error
	)
	if err := rc.Control(func(fd uintptr) {
		// F_DUPFD_CLOEXEC sets the flag atomically so a concurrent fork
		// never inherits the copy.
		nfd, dupErr = unix.FcntlInt(fd, unix.F_DUPFD_CLOEXEC, 0)
	}); err != nil {
		return nil, fmt.Errorf("failed to duplicate %s: %w", h.Name(), err)
	}
	if dupErr != nil {
		return nil, fmt.Errorf("failed to duplicate %s: %w", h.Name(), dupErr)
	}
	return NewFileHandle(os.NewFile(uintptr(nfd), h.Name())), nil
}
