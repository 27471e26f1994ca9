// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package cmd assembles the spellgate command tree.
*/
package cmd
