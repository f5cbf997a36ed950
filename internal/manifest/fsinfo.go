// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines FSInfo, which links a parsed node back to the manifest
// file it came from so that errors can name the file.
package manifest

// FSInfo records where a definition was loaded from.
type FSInfo struct {
	FilePath string
}

// NewFSInfo returns FSInfo for filePath.
func NewFSInfo(filePath string) *FSInfo {
	return &FSInfo{
		FilePath: filePath,
	}
}
