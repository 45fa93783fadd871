package cep

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"mecstock/internal/domain/entities"
	"mecstock/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const cacheTTL = 24 * time.Hour

// ViaCEPClient resolves postal codes against viacep.com.br. Responses are
// cached in redis (CEP data changes rarely) and concurrent lookups of the
// same CEP are collapsed into one upstream call.

type ViaCEPClient struct {
	httpClient *http.Client
	baseURL    string
	rdb        *redis.Client
	group      singleflight.Group
}

var _ interfaces.ICEPGateway = (*ViaCEPClient)(nil)

// NewViaCEPClient builds the gateway. rdb may be nil; then every lookup goes
// upstream.
func NewViaCEPClient(rdb *redis.Client) *ViaCEPClient {
	return &ViaCEPClient{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    "https://viacep.com.br/ws",
		rdb:        rdb,
	}
}

type viaCEPResponse struct {
	CEP         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Bairro      string `json:"bairro"`
	Localidade  string `json:"localidade"`
	UF          string `json:"uf"`
	Complemento string `json:"complemento"`
	Erro        bool   `json:"erro"`
}

func (c *ViaCEPClient) Lookup(ctx context.Context, cep string) (entities.Address, error) {
	cacheKey := "cep:" + cep

	if c.rdb != nil {
		cached, err := c.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var addr entities.Address
			if err := json.Unmarshal([]byte(cached), &addr); err == nil {
				return addr, nil
			}
		}
	}

	v, err, _ := c.group.Do(cep, func() (any, error) {
		return c.fetch(ctx, cep)
	})
	if err != nil {
		return entities.Address{}, err
	}
	addr := v.(entities.Address)

	if c.rdb != nil && !addr.IsZero() {
		if data, err := json.Marshal(addr); err == nil {
			if err := c.rdb.Set(ctx, cacheKey, data, cacheTTL).Err(); err != nil {
				log.Printf("[cep][viacep] cache set failed cep=%s err=%v", cep, err)
			}
		}
	}
	return addr, nil
}

func (c *ViaCEPClient) fetch(ctx context.Context, cep string) (entities.Address, error) {
	url := fmt.Sprintf("%s/%s/json/", c.baseURL, cep)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return entities.Address{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return entities.Address{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return entities.Address{}, fmt.Errorf("viacep returned status %d", resp.StatusCode)
	}

	var body viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return entities.Address{}, err
	}
	if body.Erro {
		// Unknown CEP; callers treat the zero address as not found.
		return entities.Address{}, nil
	}

	return entities.Address{
		CEP:        strings.ReplaceAll(body.CEP, "-", ""),
		Street:     body.Logradouro,
		District:   body.Bairro,
		City:       body.Localidade,
		State:      body.UF,
		Complement: body.Complemento,
	}, nil
}
