//go:build unix

// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package ioutil carries the one platform-specific hint the record
// scanner wants: tell the kernel a freshly opened .flt or xref file is
// about to be read sequentially from front to back, the same per-OS
// split the device packages use for platform syscalls elsewhere in
// this codebase's lineage.
package ioutil

import (
	"os"

	"golang.org/x/sys/unix"
)

// AdviseSequential hints the kernel that f will be read start-to-end,
// the way a full-file record scan always proceeds. Best-effort: a
// failure here never affects correctness, only read-ahead behavior, so
// the error is returned for the caller to log or ignore.
func AdviseSequential(f *os.File) error {
	return unix.Fadvise(int(f.Fd()), 0, 0, unix.FADV_SEQUENTIAL)
}
