package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-loyalty-admin/internal/model"
)

func TestDashboardMemberStatusToggle(t *testing.T) {
	repo := NewDashboardRepo()

	member, err := repo.ToggleMemberStatus(1)
	require.NoError(t, err)
	assert.Equal(t, model.CustomerInactive, member.Status)

	member, err = repo.ToggleMemberStatus(1)
	require.NoError(t, err)
	assert.Equal(t, model.CustomerActive, member.Status)

	_, err = repo.ToggleMemberStatus(99)
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestDashboardMerchantStatusToggle(t *testing.T) {
	repo := NewDashboardRepo()

	// QuickShop is seeded inactive.
	merchant, err := repo.ToggleMerchantStatus(2)
	require.NoError(t, err)
	assert.Equal(t, model.CustomerActive, merchant.Status)
}

func TestDashboardDelete(t *testing.T) {
	repo := NewDashboardRepo()

	require.NoError(t, repo.DeleteMember(2))
	members, err := repo.Members()
	require.NoError(t, err)
	assert.Len(t, members, 1)
	assert.ErrorIs(t, repo.DeleteMember(2), ErrMemberNotFound)

	require.NoError(t, repo.DeleteMerchant(1))
	merchants, err := repo.Merchants()
	require.NoError(t, err)
	assert.Len(t, merchants, 1)
}

func TestDashboardSetMemberContributionRate(t *testing.T) {
	repo := NewDashboardRepo()

	member, err := repo.SetMemberContributionRate(1, 7.5)
	require.NoError(t, err)
	assert.Equal(t, 7.5, member.ContributionRate)

	// The other member keeps its rate.
	members, err := repo.Members()
	require.NoError(t, err)
	assert.Equal(t, 10.0, members[1].ContributionRate)
}

func TestDashboardPointsSummaryIsACopy(t *testing.T) {
	repo := NewDashboardRepo()

	summary, err := repo.PointsSummary()
	require.NoError(t, err)
	assert.Equal(t, 2847, summary.TotalPoints)
	require.Len(t, summary.RecentTransactions, 5)

	summary.RecentTransactions[0].Amount = 0
	fresh, err := repo.PointsSummary()
	require.NoError(t, err)
	assert.Equal(t, 125, fresh.RecentTransactions[0].Amount)
}
