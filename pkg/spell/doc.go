// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package spell classifies prose tokens against a hunspell dictionary.

It owns tokenization (which must be deterministic so repeated runs produce
identical output) but delegates the actual spelling judgement to the loaded
dictionary; no spelling logic lives here.
*/
package spell
