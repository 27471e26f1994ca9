// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package allowlist holds the curated set of tokens exempted from being
reported as misspellings, and the gate that subtracts it from the flagged
token set. The allow-list file is the only durable artifact spellgate owns:
UTF-8, one token per line, rewritten whole on regenerate.
*/
package allowlist
