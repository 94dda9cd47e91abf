// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"github.com/pkg/errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RemoteError GenericError

// common errors - keep in alphabetic order
var (
	ErrChainUnavailable        = RemoteError("chain is unavailable")
	ErrConfigurationFileAbsent = NotFoundError("configuration file is not found")
	ErrDifficultyNotMet        = InvalidError("hash does not meet difficulty")
	ErrEmptyChain              = NotFoundError("chain has no blocks")
	ErrHashMismatch            = InvalidError("hash does not match block fields")
	ErrInvalidAPIAddress       = InvalidError("api address is invalid")
	ErrInvalidBurst            = InvalidError("request burst must be positive")
	ErrInvalidDifficulty       = InvalidError("difficulty is out of range")
	ErrInvalidDigest           = InvalidError("digest is invalid")
	ErrInvalidInterval         = InvalidError("block interval must be positive")
	ErrInvalidLoggerChannel    = InvalidError("invalid logger channel")
	ErrInvalidRate             = InvalidError("request rate must be positive")
	ErrInvalidStructPointer    = InvalidError("invalid struct pointer")
	ErrInvalidTimeout          = InvalidError("request timeout must be positive")
	ErrInvalidTransaction      = InvalidError("transaction is not valid JSON")
	ErrMalformedResponse       = RemoteError("response payload is malformed")
	ErrMissingChainTipField    = RemoteError("chain tip is missing index or hash")
	ErrPendingUnavailable      = RemoteError("pending transactions are unavailable")
	ErrProposalRejected        = RemoteError("block proposal was rejected")
	ErrRequestFailed           = RemoteError("request failed")
	ErrSearchCancelled         = ProcessError("proof-of-work search cancelled")
	ErrUnexpectedStatus        = RemoteError("unexpected response status")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RemoteError) Error() string   { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrInvalid(e error) bool  { _, ok := errors.Cause(e).(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := errors.Cause(e).(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := errors.Cause(e).(ProcessError); return ok }
func IsErrRemote(e error) bool   { _, ok := errors.Cause(e).(RemoteError); return ok }

// Is - true if the root cause of err is the target instance
func Is(err error, target error) bool {
	return errors.Cause(err) == target
}
