package repository

import "errors"

var (
	ErrFailedToCount = errors.New("failed to count records")
	ErrFailedToGet   = errors.New("failed to get record")
	ErrFailedToList  = errors.New("failed to list records")
	ErrFailedToSeed  = errors.New("failed to seed records")
)
