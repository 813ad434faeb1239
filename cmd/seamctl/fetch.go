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
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/codihuston/stdseam/internal/logging"
	"github.com/codihuston/stdseam/pkg/httpx"
	"github.com/codihuston/stdseam/pkg/task"
)

func newFetchCmd(a *app) *cobra.Command {
	var (
		output   string
		parallel int
	)
	cmd := &cobra.Command{
		Use:   "fetch URL...",
		Short: "Download URLs to files",
		Long: `Download each URL into the output directory, named after the last
segment of its path. With a single URL, -o names the file instead; -o -
writes to stdout.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "" && len(args) > 1 {
				return errors.New("--output requires a single URL")
			}
			if len(args) == 1 {
				return a.fetch(cmd.Context(), args[0], output)
			}
			return a.fetchAll(cmd.Context(), args, parallel)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "destination file, or - for stdout")
	cmd.Flags().IntVarP(&parallel, "parallel", "p", 4, "maximum concurrent downloads")
	return cmd
}

// fetchAll downloads urls concurrently. The first failure cancels the
// remaining downloads. URLs that would land on the same file are rejected
// before anything is downloaded.
func (a *app) fetchAll(ctx context.Context, urls []string, parallel int) error {
	outputs := make([]string, len(urls))
	seen := make(map[string]string, len(urls))
	for i, u := range urls {
		name, err := fileNameFromURL(u)
		if err != nil {
			return err
		}
		output := filepath.Join(a.cfg.OutputDir, name)
		if prev, ok := seen[output]; ok {
			return fmt.Errorf("%s and %s would both be saved as %s", prev, u, output)
		}
		seen[output] = u
		outputs[i] = output
	}

	g, ctx := task.NewGroup(ctx)
	if parallel > 0 {
		g.SetLimit(parallel)
	}
	for i, u := range urls {
		g.Go(func() error {
			return a.fetch(ctx, u, outputs[i])
		})
	}
	return g.Wait()
}

// fetch downloads rawURL to output. An empty output derives the file name
// from the URL.
func (a *app) fetch(ctx context.Context, rawURL, output string) error {
	log := logging.FromContext(ctx).WithValues("url", rawURL)

	var dst io.Writer
	if output == "-" {
		dst = a.deps.Stdout
	} else {
		if output == "" {
			name, err := fileNameFromURL(rawURL)
			if err != nil {
				return err
			}
			output = filepath.Join(a.cfg.OutputDir, name)
		}
		if err := a.fs.MkdirAll(filepath.Dir(output), DirPermissions); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", output, err)
		}
	}

	body, err := httpx.GetStream(ctx, a.client, rawURL)
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", rawURL, err)
	}
	defer func() {
		if err := body.Close(); err != nil {
			log.Error(err, "Failed to close response body")
		}
	}()

	if dst != nil {
		n, err := body.CopyToContext(ctx, dst)
		if err != nil {
			return fmt.Errorf("failed to write %s: %w", rawURL, err)
		}
		log.V(1).Info("Wrote response to stdout", "bytes", n)
		return nil
	}

	file, err := a.fs.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", output, err)
	}
	n, err := body.CopyToContext(ctx, file)
	if err != nil {
		if closeErr := file.Close(); closeErr != nil {
			log.Error(closeErr, "Failed to close file during error", "path", output)
		}
		return fmt.Errorf("failed to write file %s: %w", output, err)
	}
	if err := file.Flush(); err != nil {
		return fmt.Errorf("failed to flush file %s: %w", output, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close file %s: %w", output, err)
	}

	log.Info("Downloaded file", "path", output, "bytes", n)
	return nil
}

// fileNameFromURL returns the last path segment of rawURL
func fileNameFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL %s: %w", rawURL, err)
	}
	name := path.Base(u.Path)
	if name == "/" || name == "." || name == "" {
		return "", fmt.Errorf("cannot derive a file name from %s, use --output", rawURL)
	}
	return name, nil
}
