package ports

import "github.com/carlosrabelo/fastiron/domain/entities"

// StateService collects normalized device state
type StateService interface {
	Collect(sections []string) (entities.Snapshot, error)
}
