// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package check implements the spell-check gate commands: check (the primary
verb, also embedded at the root command), regenerate and prune.
*/
package check
