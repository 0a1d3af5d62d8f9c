// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import "fmt"

const Client = "samplebench"

// Current is the version of this build.
var Current = &Semantic{
	Major: 0,
	Minor: 3,
	Patch: 0,
}

// String returns the human readable version of this build. [commit] is
// omitted when empty.
func String(commit string) string {
	if commit == "" {
		return fmt.Sprintf("%s/%s", Client, Current)
	}
	return fmt.Sprintf("%s/%s [commit=%s]", Client, Current, commit)
}
