// SPDX-License-Identifier: GPL-2.0-or-later

// Package diag routes the collision package's rare diagnostic text to
// whatever sink the embedder provides. Nothing is emitted until a
// sink is set.
package diag

var (
	p  func(string, ...interface{})
	dp func(string, ...interface{})
)

func SetPrintf(f func(string, ...interface{})) {
	p = f
}

func SetDebugPrintf(f func(string, ...interface{})) {
	dp = f
}

func Printf(format string, v ...interface{}) {
	if p != nil {
		p(format, v...)
	}
}

// DPrintf is developer chatter, silent without a debug sink.
func DPrintf(format string, v ...interface{}) {
	if dp != nil {
		dp(format, v...)
	}
}
