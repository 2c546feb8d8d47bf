/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bracket

import "errors"

var (
	// ErrInvalidSize indicates a bracket size outside the supported set, or
	// an entrant list larger than the requested bracket.
	ErrInvalidSize = errors.New("bracket size must be one of 8, 16, 32, 64, or 128")

	// ErrEmptyInput indicates placement was requested with no entrants.
	ErrEmptyInput = errors.New("no entrants to place")

	// ErrImbalancedAllocation indicates the placed bracket does not contain
	// the required number of play-in matches. The allocation adjustment is
	// supposed to make this unreachable; seeing it means a logic defect,
	// not bad input.
	ErrImbalancedAllocation = errors.New("play-in allocation does not match required count")
)
