package queries_test

import (
	"context"
	"testing"
	"time"

	"livehaul/internal/adapters/out/postgres/paymentrepo"
	"livehaul/internal/core/application/usecases/queries"
	"livehaul/internal/core/domain/model/kernel"
	"livehaul/internal/core/domain/model/payment"
	"livehaul/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

// GetPaymentQueryHandlerIntegrationTestSuite verifies the payment read model
// against a real database, including the identifiers reported on a miss.
type GetPaymentQueryHandlerIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *paymentrepo.GormPaymentRepository
	handler    queries.GetPaymentQueryHandler
}

func (suite *GetPaymentQueryHandlerIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&paymentrepo.PaymentDTO{}, &paymentrepo.DisputeDTO{}))

	suite.repository = paymentrepo.NewGormPaymentRepository(db, noopTracker{})
	suite.handler = queries.NewGetPaymentQueryHandler(db)
}

func (suite *GetPaymentQueryHandlerIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE payments, payment_disputes").Error)
}

func (suite *GetPaymentQueryHandlerIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetPaymentQueryHandlerIntegrationTestSuite) TestHandle_ByID() {
	ctx := context.Background()
	entry := suite.createTestPayment()
	suite.Require().NoError(suite.repository.Add(ctx, entry))

	query, err := queries.NewGetPaymentQueryByID(entry.ID())
	suite.Require().NoError(err)

	view, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.True(view.ID.IsEqual(entry.ID()))
	suite.Equal(payment.StatusPendingFunding, view.Status)
	suite.Equal(900.0, view.Settlement.PayeeAmount)
	suite.False(view.Disputed)
}

func (suite *GetPaymentQueryHandlerIntegrationTestSuite) TestHandle_MissReportsTheID() {
	ctx := context.Background()
	missing := kernel.NewUUID()

	query, err := queries.NewGetPaymentQueryByID(missing)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Contains(err.Error(), missing.String(), "the miss must name the id that was asked for")
}

func (suite *GetPaymentQueryHandlerIntegrationTestSuite) TestHandle_MissByTripReportsTheTripID() {
	ctx := context.Background()
	missingTrip := kernel.NewUUID()

	query, err := queries.NewGetPaymentQueryByTrip(missingTrip)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Contains(err.Error(), missingTrip.String())
}

func (suite *GetPaymentQueryHandlerIntegrationTestSuite) createTestPayment() *payment.Payment {
	entry, err := payment.NewPayment(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		kernel.NewUUID(), kernel.NewUUID(),
		1000, "USD", 10,
	)
	suite.Require().NoError(err)
	return entry
}

func TestGetPaymentQueryHandlerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(GetPaymentQueryHandlerIntegrationTestSuite))
}
