// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package markup extracts human prose from documentation files so that only
prose is spell-checked. Code blocks, inline code, raw HTML and link targets
are not prose; flagging identifiers inside them would make the gate useless.
*/
package markup
