package supervisor

import "context"

// Filter narrows and orders supervisor listings.
type Filter struct {
	Status    *Status
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type Repository interface {
	Save(ctx context.Context, s *Supervisor) error
	Update(ctx context.Context, s *Supervisor) error
	FindByEmployeeID(ctx context.Context, employeeID uint) (*Supervisor, error)
	FindByOfficialEmail(ctx context.Context, email string) (*Supervisor, error)
	List(ctx context.Context, filter Filter) ([]*Supervisor, int64, error)
}
