// SPDX-License-Identifier: MIT

// Package diag is the logging and fatal-error facility shared by every mvec
// package.
//
// Three verbs cover the whole surface:
//
//   - Logf: informational line.
//   - Warnf: warning that blocks until the operator acknowledges it with a
//     line on the acknowledgment reader (stdin for Standard()).
//   - Fatalf: logs and terminates the process with status 1.
//
// The implementation sits on top of logrus. The exit hook is injectable
// (WithExit) so tests can observe fatal paths without dying.
package diag
