package cmd

import (
	"log/slog"

	"livehaul/internal/adapters/out/eventlog"
	"livehaul/internal/adapters/out/postgres"
	"livehaul/internal/core/application/usecases/commands"
	"livehaul/internal/core/application/usecases/queries"
	"livehaul/internal/core/ports"
	"livehaul/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  eventlog.NewSlogEventPublisher(logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateAssignLoadCommandHandler() commands.AssignLoadCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignLoadCommandHandler(f, c.publisher, c.configs.CommissionRatePct)
}

func (c *CompositionRoot) CreateTransitionTripStatusCommandHandler() commands.TransitionTripStatusCommandHandler {
	var f commands.TripUoWFactory = FuncTripUoWFactory(func() commands.TripUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionTripStatusCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateCapturePreTripCheckCommandHandler() commands.CapturePreTripCheckCommandHandler {
	var f commands.TripUoWFactory = FuncTripUoWFactory(func() commands.TripUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCapturePreTripCheckCommandHandler(f)
}

func (c *CompositionRoot) CreateCaptureEpodCommandHandler() commands.CaptureEpodCommandHandler {
	var f commands.TripUoWFactory = FuncTripUoWFactory(func() commands.TripUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCaptureEpodCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateRecordExpenseCommandHandler() commands.RecordExpenseCommandHandler {
	var f commands.TripUoWFactory = FuncTripUoWFactory(func() commands.TripUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordExpenseCommandHandler(f)
}

func (c *CompositionRoot) CreateFundPaymentCommandHandler() commands.FundPaymentCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFundPaymentCommandHandler(f)
}

func (c *CompositionRoot) CreateOpenDisputeCommandHandler() commands.OpenDisputeCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewOpenDisputeCommandHandler(f)
}

func (c *CompositionRoot) CreateResolveDisputeCommandHandler() commands.ResolveDisputeCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResolveDisputeCommandHandler(f)
}

func (c *CompositionRoot) CreateRemindUnfundedPaymentsCommandHandler() commands.RemindUnfundedPaymentsCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemindUnfundedPaymentsCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateGetPaymentQueryHandler() queries.GetPaymentQueryHandler {
	return queries.NewGetPaymentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOpenLoadsQueryHandler() queries.GetOpenLoadsQueryHandler {
	return queries.NewGetOpenLoadsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateRemindUnfundedPaymentsCommandHandler(),
		c.configs.FundingReminderSchedule,
		c.configs.FundingGracePeriod,
		c.logger,
	)
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncTripUoWFactory func() commands.TripUoW

func (f FuncTripUoWFactory) Create() commands.TripUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
