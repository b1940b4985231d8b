package services_test

import (
	"testing"
	"time"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/access"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/shipment"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/services"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func accountWith(t *testing.T, addr string, roles ...access.Role) *access.Account {
	t.Helper()
	address, err := kernel.NewAddress(addr)
	require.NoError(t, err)
	account, err := access.NewAccount(address)
	require.NoError(t, err)
	for _, role := range roles {
		_, err = account.Grant(role)
		require.NoError(t, err)
	}
	return account
}

func TestTransitionAuthorizer_AuthorizeTransition(t *testing.T) {
	authorizer := services.NewTransitionAuthorizer()

	table := []struct {
		target  shipment.Status
		allowed access.Role
		denied  access.Role
	}{
		{shipment.StatusPickedUp, access.RolePacker, access.RoleCarrier},
		{shipment.StatusInTransit, access.RoleCarrier, access.RolePacker},
		{shipment.StatusArrived, access.RoleCarrier, access.RoleBuyer},
		{shipment.StatusDelivered, access.RoleBuyer, access.RoleCarrier},
		{shipment.StatusCanceled, access.RoleCarrier, access.RoleBuyer},
		{shipment.StatusFailed, access.RoleCarrier, access.RoleStaff},
	}

	for _, tc := range table {
		t.Run(tc.target.String(), func(t *testing.T) {
			allowed := accountWith(t, "0xallowed", tc.allowed)
			require.NoError(t, authorizer.AuthorizeTransition(allowed, tc.target))

			denied := accountWith(t, "0xdenied", tc.denied)
			err := authorizer.AuthorizeTransition(denied, tc.target)
			require.ErrorIs(t, err, errs.ErrNotAuthorized)

			admin := accountWith(t, "0xadmin", access.RoleAdmin)
			require.NoError(t, authorizer.AuthorizeTransition(admin, tc.target),
				"admin passes every gate")
		})
	}

	t.Run("roleless caller is denied", func(t *testing.T) {
		nobody := accountWith(t, "0xnobody")
		err := authorizer.AuthorizeTransition(nobody, shipment.StatusPickedUp)
		require.ErrorIs(t, err, errs.ErrNotAuthorized)
	})

	t.Run("created is not a transition target", func(t *testing.T) {
		admin := accountWith(t, "0xadmin", access.RoleAdmin)
		err := authorizer.AuthorizeTransition(admin, shipment.StatusCreated)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestTransitionAuthorizer_AuthorizeCreate(t *testing.T) {
	authorizer := services.NewTransitionAuthorizer()

	require.NoError(t, authorizer.AuthorizeCreate(accountWith(t, "0xstaff", access.RoleStaff)))
	require.NoError(t, authorizer.AuthorizeCreate(accountWith(t, "0xadmin", access.RoleAdmin)))

	err := authorizer.AuthorizeCreate(accountWith(t, "0xbuyer", access.RoleBuyer))
	require.ErrorIs(t, err, errs.ErrNotAuthorized)
}

func TestTransitionAuthorizer_AuthorizeAttachDocument(t *testing.T) {
	authorizer := services.NewTransitionAuthorizer()

	staffAddr, _ := kernel.NewAddress("0xstaff")
	buyerAddr, _ := kernel.NewAddress("0xbuyer")
	ref, _ := kernel.NewContentRef("ref://details")
	shp, err := shipment.NewShipment(1, staffAddr, buyerAddr, ref, time.Now())
	require.NoError(t, err)

	t.Run("participants may attach", func(t *testing.T) {
		require.NoError(t, authorizer.AuthorizeAttachDocument(accountWith(t, "0xstaff", access.RoleStaff), shp))
		require.NoError(t, authorizer.AuthorizeAttachDocument(accountWith(t, "0xbuyer", access.RoleBuyer), shp))
	})

	t.Run("unbound carrier may not attach", func(t *testing.T) {
		carrier := accountWith(t, "0xcarrier", access.RoleCarrier)
		err := authorizer.AuthorizeAttachDocument(carrier, shp)
		require.ErrorIs(t, err, errs.ErrNotAuthorized)
	})

	t.Run("bound carrier may attach", func(t *testing.T) {
		carrierAddr, _ := kernel.NewAddress("0xcarrier")
		require.NoError(t, shp.BindCarrier(carrierAddr))

		carrier := accountWith(t, "0xcarrier", access.RoleCarrier)
		require.NoError(t, authorizer.AuthorizeAttachDocument(carrier, shp))
	})

	t.Run("admin may always attach", func(t *testing.T) {
		require.NoError(t, authorizer.AuthorizeAttachDocument(accountWith(t, "0xadmin", access.RoleAdmin), shp))
	})

	t.Run("a stranger with roles may not attach", func(t *testing.T) {
		stranger := accountWith(t, "0xstranger", access.RoleStaff, access.RoleBuyer)
		err := authorizer.AuthorizeAttachDocument(stranger, shp)
		require.ErrorIs(t, err, errs.ErrNotAuthorized)
	})
}

func TestTransitionAuthorizer_AuthorizeRoleManagement(t *testing.T) {
	authorizer := services.NewTransitionAuthorizer()

	require.NoError(t, authorizer.AuthorizeRoleManagement(accountWith(t, "0xadmin", access.RoleAdmin), "grant role"))

	err := authorizer.AuthorizeRoleManagement(accountWith(t, "0xstaff", access.RoleStaff), "grant role")
	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	assert.Contains(t, err.Error(), "grant role")
}

func TestTransitionAuthorizer_AuthorizeSetDisplayName(t *testing.T) {
	authorizer := services.NewTransitionAuthorizer()
	subject, _ := kernel.NewAddress("0xsubject")

	t.Run("self may rename", func(t *testing.T) {
		self := accountWith(t, "0xsubject")
		require.NoError(t, authorizer.AuthorizeSetDisplayName(self, subject))
	})

	t.Run("admin may rename anyone", func(t *testing.T) {
		admin := accountWith(t, "0xadmin", access.RoleAdmin)
		require.NoError(t, authorizer.AuthorizeSetDisplayName(admin, subject))
	})

	t.Run("others are denied", func(t *testing.T) {
		other := accountWith(t, "0xother", access.RoleStaff)
		err := authorizer.AuthorizeSetDisplayName(other, subject)
		require.ErrorIs(t, err, errs.ErrNotAuthorized)
	})
}
