package records

import "context"

type Repository interface {
	Append(ctx context.Context, rec Record) error
	LoadAll(ctx context.Context) ([]Record, error)
}
