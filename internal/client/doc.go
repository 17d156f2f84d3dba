// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the line-oriented client runtime.
//
// It reads editing commands for one inventory, feeds them to the settings
// reconciler, and prints reconciler notifications and collaboration events
// as they arrive.
package client
