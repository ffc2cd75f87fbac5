package diary

import "errors"

// ErrInvalidRule is returned when a substitution or delimiter pattern fails to compile.
var ErrInvalidRule = errors.New("invalid pattern")

// ErrAlignmentMismatch indicates the date token and day block counts differ under AlignStrict.
var ErrAlignmentMismatch = errors.New("date tokens and day blocks are misaligned")

// ErrInputNotFound is returned when the diary file does not exist.
var ErrInputNotFound = errors.New("diary input not found")
