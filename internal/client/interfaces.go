// SPDX-License-Identifier: Apache-2.0

package client

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command named by args and blocks until it finishes.
	Run(args []string) error
}
