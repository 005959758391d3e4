package usecase

import (
	"context"
	"errors"

	"github.com/diillson/twilio-cli-go/internal/domain/entity"
	"github.com/diillson/twilio-cli-go/internal/domain/repository"
	"github.com/diillson/twilio-cli-go/internal/shared/types"
)

const defaultUpdateErrorMessage = "unknown error"

var errNoResource = errors.New("no resource available to update")

// ResourceUpdater applies property sets to remote resources and reports the outcome.
type ResourceUpdater struct {
	console types.ConsoleInterface
}

// NewResourceUpdater creates a new resource updater.
func NewResourceUpdater(console types.ConsoleInterface) *ResourceUpdater {
	return &ResourceUpdater{console: console}
}

// Update applies set to the resource sid. A None set short-circuits without
// touching the factory. A rejected update is reported and returned as an
// Error result; it is never returned as a Go error.
func (u *ResourceUpdater) Update(ctx context.Context, factory repository.ResourceFactory, sid string, set entity.PropertySet) entity.UpdateResult {
	result := entity.UpdateResult{Sid: sid}

	props, ok := set.Get()
	if !ok {
		u.console.LogWarning("Nothing to update.")
		result.Result = entity.OutcomeNothingToUpdate
		return result
	}

	u.console.LogDebug("Updating %s with %v", sid, props.Map())

	var err error
	if factory == nil {
		err = errNoResource
	} else {
		err = factory(sid).Update(ctx, props)
	}

	if err != nil {
		u.console.LogDebug("%v", &types.ResourceUpdateError{Sid: sid, Err: err})

		detail := err.Error()
		if detail == "" {
			detail = defaultUpdateErrorMessage
		}
		u.console.LogError("%s", detail)

		result.Result = entity.OutcomeError
		result.Detail = detail
		return result
	}

	u.console.LogSuccess("Updated %s", sid)
	result.Result = entity.OutcomeSuccess
	return result
}
