/*
Copyright 2026 MindFlow Authors
SPDX-License-Identifier: Apache-2.0
*/

package export

import "errors"

var (
	// ErrAuthorization means export-time credential acquisition was denied
	// or failed. Distinct from generation errors: remediation is
	// re-consent, not re-keying.
	ErrAuthorization = errors.New("authorization for export was denied or failed")

	// ErrBatchSubmission means the remote service rejected the mutation
	// batch. The created document may exist in a partially populated
	// state; no rollback is attempted.
	ErrBatchSubmission = errors.New("export batch was rejected")
)
