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

package httpx

import (
	"fmt"
	"net/http"
)

// StatusError reports a response whose status code is outside 2xx.
type StatusError struct {
	StatusCode int
	Status     string
	Method     string
	URL        string
}

func (e *StatusError) Error() string {
	if e.Method == "" {
		return fmt.Sprintf("response status code does not indicate success: %s", e.Status)
	}
	return fmt.Sprintf("%s %s: response status code does not indicate success: %s", e.Method, e.URL, e.Status)
}

// IsSuccessStatusCode reports whether code is in the 2xx range
func IsSuccessStatusCode(code int) bool {
	return code >= http.StatusOK && code <= 299
}
