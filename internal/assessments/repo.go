package assessments

import "context"

var (
	ErrNotFound     = errNotFound{}
	ErrInvalidInput = errInvalidInput{}
)

type errNotFound struct{}

func (errNotFound) Error() string { return "assessment not found" }

type errInvalidInput struct{}

func (errInvalidInput) Error() string { return "invalid assessment input" }

type Repo interface {
	Create(ctx context.Context, assessment Assessment) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Assessment, error)
	GetByID(ctx context.Context, userID, assessmentID string) (Assessment, error)
}
