// SPDX-License-Identifier: Apache-2.0

// Package client implements the command-line client application runtime.
//
// It wires the client services, local storage, and the background health
// probe into a single process lifecycle and dispatches the vault commands.
package client
