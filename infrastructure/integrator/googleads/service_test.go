package googleads

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/storepulse/commerce-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

type stubClient struct {
	token      string
	tokenErr   error
	costMicros int64
	searchErr  error

	searchedWith string
}

func (c *stubClient) GetAccessToken() (string, error) {
	return c.token, c.tokenErr
}

func (c *stubClient) SearchCostMicros(accessToken string, startDate, endDate time.Time) (int64, error) {
	c.searchedWith = accessToken
	return c.costMicros, c.searchErr
}

func testFilters() *domain.ReportFilters {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	return &domain.ReportFilters{StartDate: &start, EndDate: &end}
}

func TestGetSpend_NormalizesMicros(t *testing.T) {
	client := &stubClient{token: "ya29.fresh", costMicros: 12_345_678}
	service := &GoogleAdsService{Client: client}

	spend, err := service.GetSpend(testFilters())

	assert.NoError(t, err)
	assert.Equal(t, 12.345678, spend)
	assert.Equal(t, "ya29.fresh", client.searchedWith)
}

func TestGetSpend_TokenExchangeFailureAborts(t *testing.T) {
	service := &GoogleAdsService{Client: &stubClient{tokenErr: errors.New("invalid_grant")}}

	spend, err := service.GetSpend(testFilters())

	assert.Error(t, err)
	assert.Equal(t, 0.0, spend)
}
