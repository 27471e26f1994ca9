// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package files provides primitives for enumerating documentation files under a
project root and for loading their data from various file or file-like
Source's.

This allows the rest of spellgate code to process logically chunked streams of
data without becoming entangled in the details of how to read data.

spellgate processes files differently depending on their Type. For example,
File instances that are TypeMarkdown are parsed as markdown before
spell-checking so that code blocks are not treated as prose.
*/
package files
