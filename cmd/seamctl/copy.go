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
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/codihuston/stdseam/internal/logging"
	"github.com/codihuston/stdseam/pkg/iox"
	"github.com/codihuston/stdseam/pkg/text"
)

var errSameFile = errors.New("source and destination are the same file")

type copyOptions struct {
	fromEncoding string
	toEncoding   string
	newline      string
}

func newCopyCmd(a *app) *cobra.Command {
	var opts copyOptions
	cmd := &cobra.Command{
		Use:   "copy SRC DST",
		Short: "Copy a file, optionally converting its text encoding",
		Long: `Copy SRC to DST. With --from or --to, the file is read as text in
the source encoding and written in the destination encoding. Encoding
names follow the WHATWG encoding standard (utf-8, latin1, shift_jis, ...).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := a.copyFile(cmd.Context(), args[0], args[1], opts)
			return err
		},
	}
	cmd.Flags().StringVar(&opts.fromEncoding, "from", "", "source text encoding")
	cmd.Flags().StringVar(&opts.toEncoding, "to", "", "destination text encoding")
	cmd.Flags().StringVar(&opts.newline, "newline", "", "rewrite line endings to lf or crlf")
	return cmd
}

// copyFile copies src to dst and returns the number of bytes read,
// counted after decoding when the text is transcoded.
func (a *app) copyFile(ctx context.Context, src, dst string, opts copyOptions) (int64, error) {
	log := logging.FromContext(ctx).WithValues("src", src, "dst", dst)

	// Create truncates dst, which would empty src before it is read
	if a.sameFile(src, dst) {
		return 0, fmt.Errorf("failed to copy %s to %s: %w", src, dst, errSameFile)
	}

	in, err := a.fs.Open(src)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer func() {
		if err := in.Close(); err != nil {
			log.Error(err, "Failed to close source")
		}
	}()

	out, err := a.fs.Create(dst)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", dst, err)
	}

	var n int64
	if opts.fromEncoding == "" && opts.toEncoding == "" && opts.newline == "" {
		n, err = in.CopyToContext(ctx, out)
	} else {
		n, err = transcode(ctx, in, out, opts)
	}
	if err != nil {
		if closeErr := out.Close(); closeErr != nil {
			log.Error(closeErr, "Failed to close destination during error")
		}
		return n, fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	if err := out.Flush(); err != nil {
		return n, fmt.Errorf("failed to flush %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		return n, fmt.Errorf("failed to close %s: %w", dst, err)
	}

	log.Info("Copied file", "bytes", n)
	return n, nil
}

// sameFile reports whether src and dst name the same file, either by path
// or, when both exist, by identity (hard links, symlinks)
func (a *app) sameFile(src, dst string) bool {
	if absPath(src) == absPath(dst) {
		return true
	}
	srcInfo, err := a.fs.Stat(src)
	if err != nil {
		return false
	}
	dstInfo, err := a.fs.Stat(dst)
	if err != nil {
		return false
	}
	return os.SameFile(srcInfo, dstInfo)
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}

// transcode copies text line by line from r in one encoding to w in
// another, checking ctx between lines.
func transcode(ctx context.Context, r io.Reader, w io.Writer, opts copyOptions) (int64, error) {
	from, err := lookupEncoding(opts.fromEncoding)
	if err != nil {
		return 0, err
	}
	to, err := lookupEncoding(opts.toEncoding)
	if err != nil {
		return 0, err
	}
	var writerOpts []iox.WriterOption
	switch opts.newline {
	case "":
	case "lf":
		writerOpts = append(writerOpts, iox.WithNewline("\n"))
	case "crlf":
		writerOpts = append(writerOpts, iox.WithNewline("\r\n"))
	default:
		return 0, fmt.Errorf("unsupported newline %q, want lf or crlf", opts.newline)
	}

	reader := iox.NewEncodedReader(r, from)
	writer := iox.NewEncodedWriter(w, to, writerOpts...)

	var n int64
	for {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		line, err := reader.ReadString('\n')
		n += int64(len(line))
		if line != "" {
			if werr := writeLine(writer, line, opts.newline != ""); werr != nil {
				return n, werr
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return n, err
		}
	}
	return n, writer.Close()
}

// writeLine writes line, replacing its terminator with the writer's
// newline when rewrite is set.
func writeLine(w iox.TextWriter, line string, rewrite bool) error {
	if !rewrite || line[len(line)-1] != '\n' {
		_, err := w.WriteString(line)
		return err
	}
	line = line[:len(line)-1]
	if line != "" && line[len(line)-1] == '\r' {
		line = line[:len(line)-1]
	}
	_, err := w.WriteLine(line)
	return err
}

func lookupEncoding(name string) (text.Encoding, error) {
	if name == "" {
		return nil, nil
	}
	return text.LookupEncoding(name)
}
