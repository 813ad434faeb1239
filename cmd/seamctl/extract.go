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
	"archive/tar"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/codihuston/stdseam/internal/logging"
	"github.com/codihuston/stdseam/pkg/httpx"
)

func newExtractCmd(a *app) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "extract URL",
		Short: "Download a .tar.gz archive and extract it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				dir = a.cfg.OutputDir
			}
			_, err := a.extract(cmd.Context(), args[0], dir)
			return err
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "destination directory (default is the output directory)")
	return cmd
}

// extract downloads a gzip-compressed tarball and unpacks it into dir.
// It returns the number of regular files written.
func (a *app) extract(ctx context.Context, rawURL, dir string) (int, error) {
	log := logging.FromContext(ctx).WithValues("url", rawURL, "dir", dir)
	log.Info("Downloading archive")

	if err := a.fs.MkdirAll(dir, DirPermissions); err != nil {
		return 0, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	body, err := httpx.GetStream(ctx, a.client, rawURL)
	if err != nil {
		return 0, fmt.Errorf("failed to download archive: %w", err)
	}
	defer func() {
		if err := body.Close(); err != nil {
			log.Error(err, "Failed to close response body")
		}
	}()

	gzipReader, err := gzip.NewReader(body)
	if err != nil {
		return 0, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer func() {
		if err := gzipReader.Close(); err != nil {
			log.Error(err, "Failed to close gzip reader")
		}
	}()

	tarReader := tar.NewReader(gzipReader)
	files := 0
	for {
		if err := ctx.Err(); err != nil {
			return files, err
		}
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return files, fmt.Errorf("failed to read tar entry: %w", err)
		}

		targetPath, err := securePath(dir, header.Name)
		if err != nil {
			return files, err
		}

		switch header.Typeflag {
		case tar.TypeDir:
			// #nosec G115 - header.Mode is from tar header, safe conversion
			if err := a.fs.MkdirAll(targetPath, os.FileMode(header.Mode)&os.ModePerm); err != nil {
				return files, fmt.Errorf("failed to create directory %s: %w", targetPath, err)
			}
		case tar.TypeReg:
			if err := a.writeEntry(tarReader, targetPath, os.FileMode(header.Mode)&os.ModePerm); err != nil {
				return files, err
			}
			files++
		default:
			log.V(1).Info("Skipping unsupported tar entry", "name", header.Name, "type", string(header.Typeflag))
		}
	}

	log.Info("Extracted archive", "files", files)
	return files, nil
}

func (a *app) writeEntry(r io.Reader, targetPath string, mode os.FileMode) error {
	if err := a.fs.MkdirAll(filepath.Dir(targetPath), DirPermissions); err != nil {
		return fmt.Errorf("failed to create parent directory for %s: %w", targetPath, err)
	}

	file, err := a.fs.OpenFile(targetPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", targetPath, err)
	}

	// #nosec G110 - archives come from a URL the operator chose
	if _, err := io.Copy(file, r); err != nil {
		if closeErr := file.Close(); closeErr != nil {
			a.log.Error(closeErr, "Failed to close file during error", "path", targetPath)
		}
		return fmt.Errorf("failed to write file %s: %w", targetPath, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close file %s: %w", targetPath, err)
	}
	return nil
}

// securePath joins name onto dir and rejects names that escape dir
func securePath(dir, name string) (string, error) {
	target := filepath.Join(dir, name)
	rel, err := filepath.Rel(dir, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("invalid file path in archive: %s", name)
	}
	return target, nil
}
