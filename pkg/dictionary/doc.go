// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package dictionary resolves dictionary selectors into concrete hunspell
.aff/.dic file pairs and loads them.

A selector is either a language name such as "en_US" (resolved against
$DICPATH and the conventional system dictionary directories) or a path to one
of the pair's files (or their shared base path). Resolution failures are
reported before any document is read so that a run never silently checks
against the wrong language.
*/
package dictionary
