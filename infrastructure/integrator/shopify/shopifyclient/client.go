package shopifyclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	shopifydomain "github.com/storepulse/commerce-dashboard-api/infrastructure/integrator/shopify/domain"
	"github.com/storepulse/commerce-dashboard-api/internal/domain"
)

type Client interface {
	GetOrders(filters *domain.ReportFilters) ([]shopifydomain.OrderNode, error)
	GetOrderQuantities(filters *domain.ReportFilters) ([]shopifydomain.OrderNode, error)
	GetOrderTotals(filters *domain.ReportFilters) ([]shopifydomain.OrderNode, error)
}

type ShopifyClient struct {
	graphqlURL  string
	accessToken string
	httpClient  *http.Client
}

func NewClient(graphqlURL, accessToken string) Client {
	return &ShopifyClient{
		graphqlURL:  graphqlURL,
		accessToken: accessToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// postQuery issues one GraphQL call and decodes the orders envelope. Any
// transport failure, non-2xx status, or GraphQL-level error aborts with no
// partial result.
func (c *ShopifyClient) postQuery(query string, variables map[string]any) (*shopifydomain.OrdersConnection, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	payload, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, errors.Wrap(err, "encoding graphql request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.graphqlURL, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "creating graphql request")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "executing graphql request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading graphql response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("shopify request failed with status %s: %s", resp.Status, body)
	}

	var envelope shopifydomain.OrdersEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, errors.Wrap(err, "decoding graphql response")
	}

	if len(envelope.Errors) > 0 {
		return nil, errors.Errorf("shopify query failed: %s", envelope.Errors[0].Message)
	}

	if envelope.Data == nil {
		return nil, errors.New("shopify response carried no data")
	}

	return &envelope.Data.Orders, nil
}

// paginate walks the full cursor chain for the given query, concatenating
// every page's orders in received order. A failure on any page discards all
// previously fetched pages.
func (c *ShopifyClient) paginate(query string, filters *domain.ReportFilters, pageSize int) ([]shopifydomain.OrderNode, error) {
	var (
		orders    []shopifydomain.OrderNode
		endCursor *string
	)

	for {
		variables := map[string]any{
			"query": buildCreatedAtQuery(filters),
			"first": pageSize,
			"after": endCursor,
		}

		page, err := c.postQuery(query, variables)
		if err != nil {
			return nil, err
		}

		for _, edge := range page.Edges {
			orders = append(orders, edge.Node)
		}

		if !page.PageInfo.HasNextPage {
			return orders, nil
		}

		endCursor = page.PageInfo.EndCursor
	}
}
