package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrNotFound  = errors.New("not found")
	ErrNoBids    = errors.New("no bids found for round")
	ErrNameTaken = errors.New("name already taken in this game")
)

// business logic errors
var (
	ErrUnauthorized         = errors.New("unauthorized")
	ErrInvalidInput         = errors.New("invalid input")
	ErrRoundNotActive       = errors.New("round is not active")
	ErrRoundAlreadyActive   = errors.New("another round is already active")
	ErrBidTooLow            = errors.New("bid amount too low")
	ErrAlreadyHighestBidder = errors.New("you already have the highest bid")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrSessionCompleted     = errors.New("this game has already ended")
	ErrPersistenceFailure   = errors.New("failed to persist change")
)
