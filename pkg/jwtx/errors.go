package jwtx

import "errors"

var (
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
	ErrIssuer      = errors.New("jwtx: unexpected issuer")
	ErrSignature   = errors.New("jwtx: signature verification failed")
	ErrMalformed   = errors.New("jwtx: malformed token")
)
