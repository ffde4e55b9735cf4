package commands

import (
	"errors"

	"livehaul/internal/core/domain/model/kernel"
	"livehaul/internal/pkg/errs"
	"livehaul/internal/pkg/guard"
)

var ErrAssignLoadCommandIsNotConstructed = errors.New(
	"AssignLoadCommand must be created via NewAssignLoadCommand constructor",
)

// AssignLoadCommand represents a request to hand a posted load to a carrier.
// The actor is the caller (shipper or admin); the carrier user is the winner
// they picked off the marketplace board.
//
// Example:
//
//	cmd, err := NewAssignLoadCommand(loadID, actorID, kernel.RoleShipper, carrierUserID)
//	if err != nil {
//	    return fmt.Errorf("invalid assignment request: %w", err)
//	}
//	result, err := handler.Handle(ctx, cmd)
type AssignLoadCommand struct { //nolint:recvcheck //using for validation
	loadID        kernel.UUID
	actorID       kernel.UUID
	actorRole     kernel.Role
	carrierUserID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignLoadCommand creates a command to assign a load to a carrier.
// An unresolvable actor id is an authorization failure, not bad input:
// identity comes from the request headers and an absent identity means the
// caller never authenticated.
func NewAssignLoadCommand(
	loadID, actorID kernel.UUID,
	actorRole kernel.Role,
	carrierUserID kernel.UUID,
) (AssignLoadCommand, error) {
	cmd := AssignLoadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := actorID.Validate(); err != nil {
		return AssignLoadCommand{}, errs.NewUnauthorizedError("assign load")
	}

	if err := errors.Join(
		cmd.setLoadID(loadID),
		cmd.setActorRole(actorRole),
		cmd.setCarrierUserID(carrierUserID),
	); err != nil {
		return AssignLoadCommand{}, err
	}

	cmd.actorID = actorID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignLoadCommand) Validate() error {
	return c.guard.Validate(ErrAssignLoadCommandIsNotConstructed)
}

// LoadID returns the load being assigned.
func (c AssignLoadCommand) LoadID() kernel.UUID { return c.loadID }

// ActorID returns the caller's user id.
func (c AssignLoadCommand) ActorID() kernel.UUID { return c.actorID }

// ActorRole returns the caller's role.
func (c AssignLoadCommand) ActorRole() kernel.Role { return c.actorRole }

// CarrierUserID returns the carrier user winning the load.
func (c AssignLoadCommand) CarrierUserID() kernel.UUID { return c.carrierUserID }

func (c *AssignLoadCommand) setLoadID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("load id", err)
	}
	c.loadID = id
	return nil
}

func (c *AssignLoadCommand) setActorRole(role kernel.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.actorRole = role
	return nil
}

func (c *AssignLoadCommand) setCarrierUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("carrier user id", err)
	}
	c.carrierUserID = id
	return nil
}
