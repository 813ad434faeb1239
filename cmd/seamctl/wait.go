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
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/util/wait"

	"github.com/codihuston/stdseam/internal/logging"
	"github.com/codihuston/stdseam/pkg/httpx"
	"github.com/codihuston/stdseam/pkg/task"
)

func newWaitCmd(a *app) *cobra.Command {
	var interval, timeout time.Duration
	cmd := &cobra.Command{
		Use:   "wait URL",
		Short: "Wait until URL answers with a 2xx status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.waitReady(cmd.Context(), args[0], interval, timeout)
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", 2*time.Second, "time between attempts")
	cmd.Flags().DurationVar(&timeout, "wait-timeout", time.Minute, "give up after this long")
	return cmd
}

// waitReady polls rawURL with HEAD requests until one succeeds
func (a *app) waitReady(ctx context.Context, rawURL string, interval, timeout time.Duration) error {
	log := logging.FromContext(ctx).WithValues("url", rawURL)
	attempts := 0
	err := task.Poll(ctx, interval, timeout, func(ctx context.Context) (bool, error) {
		attempts++
		req, err := httpx.NewRequest(ctx, http.MethodHead, rawURL, nil)
		if err != nil {
			return false, err
		}
		resp, err := a.client.Do(req.Unwrap())
		if err != nil {
			log.V(1).Info("Endpoint not reachable yet", "attempt", attempts, "error", err.Error())
			return false, nil
		}
		r := httpx.NewResponse(resp)
		defer func() {
			_ = r.Close()
		}()
		if !r.IsSuccessStatusCode() {
			log.V(1).Info("Endpoint not ready yet", "attempt", attempts, "status", r.StatusCode())
			return false, nil
		}
		return true, nil
	})
	if wait.Interrupted(err) {
		return fmt.Errorf("%s not ready after %d attempts: %w", rawURL, attempts, err)
	}
	if err != nil {
		return err
	}
	log.Info("Endpoint is ready", "attempts", attempts)
	return nil
}
