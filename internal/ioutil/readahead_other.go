//go:build !unix

// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package ioutil

import "os"

// AdviseSequential is a no-op on platforms without a posix_fadvise
// equivalent wired up; read-ahead is left to the OS's own default
// heuristics.
func AdviseSequential(f *os.File) error { return nil }
