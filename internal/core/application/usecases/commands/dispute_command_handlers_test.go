package commands_test

import (
	"testing"
	"time"

	"livehaul/internal/core/application/usecases/commands"
	"livehaul/internal/core/domain/model/kernel"
	"livehaul/internal/core/domain/model/payment"
	"livehaul/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOpenDisputeCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	shipperID := kernel.NewUUID()
	entry := newPendingPaymentFor(t, shipperID)
	cmd, err := commands.NewOpenDisputeCommand(entry.ID(), shipperID, "two animals short at offload")
	require.NoError(t, err)

	paymentRepo := new(MockPaymentRepository)
	paymentRepo.On("Get", mock.Anything, entry.ID()).Return(entry, nil)
	paymentRepo.On("AddDispute", mock.Anything, mock.AnythingOfType("*payment.Dispute")).Return(nil)
	_, factory := newPaymentUoW(ctx, paymentRepo)

	h := commands.NewOpenDisputeCommandHandler(factory)
	dispute, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, payment.DisputeOpen, dispute.Status)
	assert.True(t, dispute.PaymentID.IsEqual(entry.ID()))
	// Opening a dispute never touches the payment row.
	paymentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestOpenDisputeCommandHandler_Handle_PaymentNotFound(t *testing.T) {
	ctx := t.Context()
	paymentID := kernel.NewUUID()
	cmd, err := commands.NewOpenDisputeCommand(paymentID, kernel.NewUUID(), "no delivery")
	require.NoError(t, err)

	paymentRepo := new(MockPaymentRepository)
	paymentRepo.On("Get", mock.Anything, paymentID).Return(nil, notFound("payment"))
	_, factory := newPaymentUoW(ctx, paymentRepo)

	h := commands.NewOpenDisputeCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestResolveDisputeCommandHandler_Handle_Split(t *testing.T) {
	ctx := t.Context()
	entry := newPendingPaymentFor(t, kernel.NewUUID())
	dispute, err := payment.NewDispute(kernel.NewUUID(), entry.ID(), kernel.NewUUID(), "partial loss", time.Now())
	require.NoError(t, err)

	cmd, err := commands.NewResolveDisputeCommand(
		dispute.ID, kernel.NewUUID(), kernel.RoleAdmin,
		string(payment.DisputeResolvedSplit), 600, 400,
	)
	require.NoError(t, err)

	paymentRepo := new(MockPaymentRepository)
	paymentRepo.On("GetDispute", mock.Anything, dispute.ID).Return(dispute, nil)
	paymentRepo.On("Get", mock.Anything, entry.ID()).Return(entry, nil)
	paymentRepo.On("UpdateDispute", mock.Anything, dispute).Return(nil)
	_, factory := newPaymentUoW(ctx, paymentRepo)

	h := commands.NewResolveDisputeCommandHandler(factory)
	resolved, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, payment.DisputeResolvedSplit, resolved.Status)
	assert.Equal(t, 600.0, *resolved.PayeeAmount)
	assert.Equal(t, 400.0, *resolved.PayerRefund)
}

func TestResolveDisputeCommandHandler_Handle_NonAdminForbidden(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewResolveDisputeCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.RoleShipper,
		string(payment.DisputeResolvedRefund), 0, 0,
	)
	require.NoError(t, err)

	h := commands.NewResolveDisputeCommandHandler(new(MockPaymentUoWFactory))
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestResolveDisputeCommandHandler_Handle_SplitMustConserveAmount(t *testing.T) {
	ctx := t.Context()
	entry := newPendingPaymentFor(t, kernel.NewUUID())
	dispute, err := payment.NewDispute(kernel.NewUUID(), entry.ID(), kernel.NewUUID(), "short delivery", time.Now())
	require.NoError(t, err)

	cmd, err := commands.NewResolveDisputeCommand(
		dispute.ID, kernel.NewUUID(), kernel.RoleAdmin,
		string(payment.DisputeResolvedSplit), 600, 300,
	)
	require.NoError(t, err)

	paymentRepo := new(MockPaymentRepository)
	paymentRepo.On("GetDispute", mock.Anything, dispute.ID).Return(dispute, nil)
	paymentRepo.On("Get", mock.Anything, entry.ID()).Return(entry, nil)
	_, factory := newPaymentUoW(ctx, paymentRepo)

	h := commands.NewResolveDisputeCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	paymentRepo.AssertNotCalled(t, "UpdateDispute", mock.Anything, mock.Anything)
}

func TestNewResolveDisputeCommand_RejectsUnknownResolution(t *testing.T) {
	_, err := commands.NewResolveDisputeCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.RoleAdmin,
		"RESOLVED_SOMEHOW", 0, 0,
	)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
