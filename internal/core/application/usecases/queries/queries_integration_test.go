package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/adapters/out/postgres"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/adapters/out/postgres/accountrepo"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/adapters/out/postgres/escrowrepo"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/adapters/out/postgres/shipmentrepo"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/adapters/out/postgres/tokenledger"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/application/usecases/queries"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/access"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/escrow"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/shipment"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
)

// QueriesIntegrationTestSuite verifies the read-side handlers against a real
// PostgreSQL instance seeded through the write-side repositories.
type QueriesIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres.Migrate(db))
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(`
		TRUNCATE TABLE accounts, orders, shipments, shipment_content_refs,
			shipment_documents, escrows, token_balances, token_allowances
	`).Error)
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueriesIntegrationTestSuite) address(value string) kernel.Address {
	addr, err := kernel.NewAddress(value)
	suite.Require().NoError(err)
	return addr
}

func (suite *QueriesIntegrationTestSuite) contentRef(value string) kernel.ContentRef {
	ref, err := kernel.NewContentRef(value)
	suite.Require().NoError(err)
	return ref
}

func (suite *QueriesIntegrationTestSuite) seedShipment(id uint64, staff, buyer string) *shipment.Shipment {
	now := time.Now().UTC().Truncate(time.Microsecond)
	shp, err := shipment.NewShipment(
		id,
		suite.address(staff),
		suite.address(buyer),
		suite.contentRef("ipfs://manifest"),
		now,
	)
	suite.Require().NoError(err)

	repo := shipmentrepo.NewGormShipmentRepository(suite.db)
	suite.Require().NoError(repo.Add(context.Background(), shp))

	return shp
}

func (suite *QueriesIntegrationTestSuite) TestGetShipment_ReturnsFullReadModel() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	shp := suite.seedShipment(1, "staff-1", "buyer-1")
	suite.Require().NoError(shp.TransitionTo(shipment.StatusPickedUp, "", now))
	suite.Require().NoError(shp.AppendContentRef(suite.contentRef("ipfs://packing-list"), now))

	repo := shipmentrepo.NewGormShipmentRepository(suite.db)
	suite.Require().NoError(repo.Update(ctx, shp))

	query, err := queries.NewGetShipmentQuery(1)
	suite.Require().NoError(err)

	response, err := queries.NewGetShipmentQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(uint64(1), response.ID)
	suite.Equal("staff-1", response.Staff)
	suite.Equal("buyer-1", response.Buyer)
	suite.Equal("PickedUp", response.Status)
	suite.Equal(1, response.StatusCode)
	suite.Equal([]string{"ipfs://manifest", "ipfs://packing-list"}, response.ContentRefs)
}

func (suite *QueriesIntegrationTestSuite) TestGetShipment_Unknown_ReturnsNotFound() {
	query, err := queries.NewGetShipmentQuery(42)
	suite.Require().NoError(err)

	_, err = queries.NewGetShipmentQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().Error(err)

	var notFound *errs.ObjectNotFoundError
	suite.ErrorAs(err, &notFound)
}

func (suite *QueriesIntegrationTestSuite) TestGetShipmentDocuments() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	shp := suite.seedShipment(1, "staff-1", "buyer-1")
	_, err := shp.AttachDocument("invoice", suite.contentRef("ipfs://invoice"), suite.address("staff-1"), now)
	suite.Require().NoError(err)
	_, err = shp.AttachDocument("photo", suite.contentRef("ipfs://photo"), suite.address("staff-1"), now)
	suite.Require().NoError(err)

	repo := shipmentrepo.NewGormShipmentRepository(suite.db)
	suite.Require().NoError(repo.Update(ctx, shp))

	query, err := queries.NewGetShipmentDocumentsQuery(1)
	suite.Require().NoError(err)

	docs, err := queries.NewGetShipmentDocumentsQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(docs, 2)
	suite.Equal("invoice", docs[0].DocType)
	suite.Equal("photo", docs[1].DocType)
}

func (suite *QueriesIntegrationTestSuite) TestGetShipmentDocuments_UnknownShipment_ReturnsEmpty() {
	query, err := queries.NewGetShipmentDocumentsQuery(42)
	suite.Require().NoError(err)

	docs, err := queries.NewGetShipmentDocumentsQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Empty(docs)
}

func (suite *QueriesIntegrationTestSuite) TestGetShipmentsByAddress() {
	ctx := context.Background()

	suite.seedShipment(1, "staff-1", "buyer-1")
	suite.seedShipment(2, "staff-2", "buyer-1")
	suite.seedShipment(3, "staff-2", "buyer-2")

	query, err := queries.NewGetShipmentsByAddressQuery("buyer-1")
	suite.Require().NoError(err)

	shipments, err := queries.NewGetShipmentsByAddressQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(shipments, 2)
	suite.Equal(uint64(1), shipments[0].ID)
	suite.Equal(uint64(2), shipments[1].ID)
	suite.Equal("Created", shipments[0].Status)
}

func (suite *QueriesIntegrationTestSuite) TestGetTotalShipments() {
	ctx := context.Background()

	query, err := queries.NewGetTotalShipmentsQuery()
	suite.Require().NoError(err)

	handler := queries.NewGetTotalShipmentsQueryHandler(suite.db)

	total, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Zero(total)

	suite.seedShipment(1, "staff-1", "buyer-1")
	suite.seedShipment(2, "staff-1", "buyer-2")

	total, err = handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(uint64(2), total)
}

func (suite *QueriesIntegrationTestSuite) TestGetEscrowDetails() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	esc, err := escrow.NewEscrow(1, suite.address("buyer-1"), 1000, now.Add(72*time.Hour), now)
	suite.Require().NoError(err)

	_, err = esc.Release(1, now)
	suite.Require().NoError(err)

	repo := escrowrepo.NewGormEscrowRepository(suite.db)
	suite.Require().NoError(repo.Add(ctx, esc))

	query, err := queries.NewGetEscrowDetailsQuery(1)
	suite.Require().NoError(err)

	response, err := queries.NewGetEscrowDetailsQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(uint64(1), response.ShipmentID)
	suite.Equal("buyer-1", response.Buyer)
	suite.Equal(int64(1000), response.TotalAmount)
	suite.Equal(int64(300), response.ReleasedAmount)
	suite.Equal(int64(700), response.RemainingAmount)
	suite.Equal([]bool{true, false, false, false}, response.Milestones)
	suite.True(response.Active)
	suite.False(response.Completed)
}

func (suite *QueriesIntegrationTestSuite) TestGetEscrowDetails_Unknown_ReturnsNotFound() {
	query, err := queries.NewGetEscrowDetailsQuery(42)
	suite.Require().NoError(err)

	_, err = queries.NewGetEscrowDetailsQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().Error(err)

	var notFound *errs.ObjectNotFoundError
	suite.ErrorAs(err, &notFound)
}

func (suite *QueriesIntegrationTestSuite) TestHasRole() {
	ctx := context.Background()

	account, err := access.NewAccount(suite.address("carrier-1"))
	suite.Require().NoError(err)
	_, err = account.Grant(access.RoleCarrier)
	suite.Require().NoError(err)

	repo := accountrepo.NewGormAccountRepository(suite.db)
	suite.Require().NoError(repo.Add(ctx, account))

	handler := queries.NewHasRoleQueryHandler(suite.db)

	query, err := queries.NewHasRoleQuery("carrier-1", "CARRIER")
	suite.Require().NoError(err)

	hasRole, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.True(hasRole)

	query, err = queries.NewHasRoleQuery("carrier-1", "ADMIN")
	suite.Require().NoError(err)

	hasRole, err = handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.False(hasRole)

	query, err = queries.NewHasRoleQuery("stranger", "CARRIER")
	suite.Require().NoError(err)

	hasRole, err = handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.False(hasRole)
}

func (suite *QueriesIntegrationTestSuite) TestGetBalance() {
	ctx := context.Background()

	ledger := tokenledger.NewGormTokenLedger(suite.db)
	suite.Require().NoError(ledger.Mint(ctx, suite.address("buyer-1"), 750))

	handler := queries.NewGetBalanceQueryHandler(suite.db)

	query, err := queries.NewGetBalanceQuery("buyer-1")
	suite.Require().NoError(err)

	balance, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(int64(750), balance)

	query, err = queries.NewGetBalanceQuery("stranger")
	suite.Require().NoError(err)

	balance, err = handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Zero(balance)
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
