package complaint

import "context"

type Repository interface {
	ListOptions(ctx context.Context) ([]*Option, error)
	// AddOrTouch inserts the option text or, when it already exists,
	// leaves the row as is. Reports whether a new row was created.
	AddOrTouch(ctx context.Context, text string) (bool, error)
}
