package spendyclient

import (
	"context"
	"net/http"
	"net/url"

	spendydomain "github.com/vfg2006/spendy-api/infrastructure/integrator/spendy/domain"
)

func (c *SpendyClient) Login(ctx context.Context, payload spendydomain.LoginRequest) (*spendydomain.LoginResponse, error) {
	data, err := c.sendJSON(ctx, http.MethodPost, loginPath, "", payload)
	if err != nil {
		return nil, err
	}

	var response spendydomain.LoginResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, invalidResponse(err)
	}

	if response.Token == "" {
		return nil, ErrEmptyToken
	}

	return &response, nil
}

func (c *SpendyClient) Register(ctx context.Context, payload spendydomain.RegisterRequest) (string, error) {
	data, err := c.sendJSON(ctx, http.MethodPost, registerPath, "", payload)
	if err != nil {
		return "", err
	}

	return messageFrom(data), nil
}

func (c *SpendyClient) LinkHouse(ctx context.Context, token string, payload spendydomain.LinkHouseRequest) (string, error) {
	data, err := c.sendJSON(ctx, http.MethodPost, linkHousePath, token, payload)
	if err != nil {
		return "", err
	}

	return messageFrom(data), nil
}

func (c *SpendyClient) RetrieveRoommates(ctx context.Context, token string, houseID string) ([]map[string]any, error) {
	data, err := c.send(ctx, request{
		method: http.MethodGet,
		path:   roommatesPath,
		query:  url.Values{"houseId": []string{houseID}},
		token:  token,
	})
	if err != nil {
		return nil, err
	}

	return decodeRecords(data)
}
